package ports

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

// Messenger publishes the public poll message into a channel and
// returns the identifier of the created message. That identifier
// becomes the poll's persistence key.
type Messenger interface {
	PublishPoll(ctx context.Context, channelID string, poll *domain.Poll) (string, error)
}
