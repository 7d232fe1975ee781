package ports

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

// PollStore is the persistence gateway: a key-value store holding one
// record per poll, keyed by the id of the message that displays it.
type PollStore interface {
	Save(ctx context.Context, id string, poll *domain.Poll) error
	Load(ctx context.Context, id string) (*domain.Poll, error)
	Keys(ctx context.Context) ([]string, error)
}
