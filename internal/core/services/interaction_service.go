package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// Reply texts. Every acknowledgment is ephemeral, visible only to the
// acting participant; the public poll message is never edited.
const (
	ReplyVotedYes     = "You voted yes!"
	ReplyVotedNo      = "You voted no!"
	ReplyAlreadyVoted = "You already voted!"
	ReplyUnknownID    = "Unknown id"

	replyResultsFormat = "Yes: %d No: %d"
)

type interactionService struct {
	store ports.PollStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewInteractionService(store ports.PollStore) ports.InteractionService {
	return &interactionService{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Handle runs the state machine for one button press: load the record,
// reject unknown controls, apply the already-voted gate, then either
// record the vote and persist, or report the tally.
//
// The load-mutate-save sequence is serialized per poll id so two
// concurrent presses on the same poll cannot overwrite each other's
// vote. Interactions on different polls proceed independently.
func (s *interactionService) Handle(ctx context.Context, input ports.VoteInput) (string, error) {
	unlock := s.lockPoll(input.PollID)
	defer unlock()

	poll, err := s.store.Load(ctx, input.PollID)
	if err != nil {
		return "", fmt.Errorf("failed to load poll %s: %w", input.PollID, err)
	}

	if input.Action == domain.ActionUnknown {
		return ReplyUnknownID, nil
	}

	// The gate applies to ViewResults too: an already-voted participant
	// pressing any poll button gets this reply, never the tally.
	if poll.HasVoted(input.Voter) {
		return ReplyAlreadyVoted, nil
	}

	var reply string
	switch input.Action {
	case domain.ActionViewResults:
		yes, no := poll.Tally()
		return fmt.Sprintf(replyResultsFormat, yes, no), nil
	case domain.ActionVoteYes:
		reply = ReplyVotedYes
	case domain.ActionVoteNo:
		reply = ReplyVotedNo
	}

	if err := poll.CastVote(input.Voter, input.Action); err != nil {
		return "", fmt.Errorf("failed to record vote on poll %s: %w", input.PollID, err)
	}

	if err := s.store.Save(ctx, input.PollID, poll); err != nil {
		return "", fmt.Errorf("failed to save poll %s: %w", input.PollID, err)
	}

	return reply, nil
}

func (s *interactionService) lockPoll(id string) func() {
	s.mu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
