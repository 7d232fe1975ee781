package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

type pollService struct {
	store     ports.PollStore
	messenger ports.Messenger
}

func NewPollService(store ports.PollStore, messenger ports.Messenger) ports.PollService {
	return &pollService{
		store:     store,
		messenger: messenger,
	}
}

// Create builds the record, publishes the public poll message and
// persists the record under the published message's id. The message id
// is supplied by the platform; the core never invents keys.
func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*ports.CreatedPoll, error) {
	poll := domain.NewPoll(input.Title, input.Description, input.ReasonToVoteYes, input.ReasonToVoteNo)

	messageID, err := s.messenger.PublishPoll(ctx, input.ChannelID, poll)
	if err != nil {
		return nil, fmt.Errorf("failed to publish poll message: %w", err)
	}

	if err := s.store.Save(ctx, messageID, poll); err != nil {
		return nil, fmt.Errorf("failed to save poll %s: %w", messageID, err)
	}

	return &ports.CreatedPoll{MessageID: messageID, Poll: poll}, nil
}

func (s *pollService) Get(ctx context.Context, id string) (*domain.Poll, error) {
	return s.store.Load(ctx, id)
}
