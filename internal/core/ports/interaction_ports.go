package ports

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

// VoteInput is one classified button press on a poll message.
type VoteInput struct {
	PollID string
	Voter  domain.Voter
	Action domain.Action
}

// InteractionService runs the vote state machine for one interaction
// and returns the ephemeral reply text for the acting participant.
// Storage faults are returned as errors and abort the interaction;
// policy rejections (already voted, unknown control) are returned as
// reply text, not errors.
type InteractionService interface {
	Handle(ctx context.Context, input VoteInput) (string, error)
}
