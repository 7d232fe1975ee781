package ports

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

type CreatePollInput struct {
	ChannelID       string
	Title           string
	Description     string
	ReasonToVoteYes string
	ReasonToVoteNo  string
}

// CreatedPoll reports where a freshly created poll landed.
type CreatedPoll struct {
	MessageID string
	Poll      *domain.Poll
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*CreatedPoll, error)
	Get(ctx context.Context, id string) (*domain.Poll, error)
}
