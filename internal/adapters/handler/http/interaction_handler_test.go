package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/pollbot/internal/adapters/discord"
	"github.com/vncsmyrnk/pollbot/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
	"github.com/vncsmyrnk/pollbot/internal/core/services"
)

type stubPollService struct {
	created *ports.CreatedPoll
	err     error

	gotInput ports.CreatePollInput
}

func (s *stubPollService) Create(_ context.Context, input ports.CreatePollInput) (*ports.CreatedPoll, error) {
	s.gotInput = input
	return s.created, s.err
}

func (s *stubPollService) Get(_ context.Context, id string) (*domain.Poll, error) {
	return nil, domain.ErrPollNotFound
}

func newComponentInteraction(messageID, userID, customID string) discord.Interaction {
	return discord.Interaction{
		Type:    discord.InteractionTypeMessageComponent,
		Data:    &discord.InteractionData{CustomID: customID},
		Message: &discord.Message{ID: messageID},
		Member:  &discord.Member{User: &discord.User{ID: userID}},
	}
}

func postInteraction(t *testing.T, handler *InteractionHandler, interaction discord.Interaction) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(interaction)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) discord.InteractionResponse {
	t.Helper()

	var resp discord.InteractionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func newVotingHandler(t *testing.T, pollID string) (*InteractionHandler, ports.PollStore) {
	t.Helper()

	store := memory.NewRecordRepository()
	require.NoError(t, store.Save(context.Background(), pollID, domain.NewPoll("T", "D", "Y", "N")))
	return NewInteractionHandler(&stubPollService{}, services.NewInteractionService(store)), store
}

func TestHandlePing(t *testing.T) {
	handler := NewInteractionHandler(&stubPollService{}, nil)

	rec := postInteraction(t, handler, discord.Interaction{Type: discord.InteractionTypePing})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, discord.ResponseTypePong, decodeResponse(t, rec).Type)
}

func TestHandleVoteButton(t *testing.T) {
	handler, store := newVotingHandler(t, "600")

	rec := postInteraction(t, handler, newComponentInteraction("600", "42", domain.ControlYes))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, discord.ResponseTypeChannelMessage, resp.Type)
	require.NotNil(t, resp.Data)
	assert.Equal(t, services.ReplyVotedYes, resp.Data.Content)
	assert.Equal(t, discord.MessageFlagEphemeral, resp.Data.Flags)

	poll, err := store.Load(context.Background(), "600")
	require.NoError(t, err)
	assert.Equal(t, []domain.Voter{42}, poll.YesVotes)
}

func TestHandleViewButton(t *testing.T) {
	handler, _ := newVotingHandler(t, "600")

	postInteraction(t, handler, newComponentInteraction("600", "42", domain.ControlYes))
	rec := postInteraction(t, handler, newComponentInteraction("600", "7", domain.ControlView))

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Yes: 1 No: 0", resp.Data.Content)
	assert.Equal(t, discord.MessageFlagEphemeral, resp.Data.Flags)
}

func TestHandleForeignControlIgnored(t *testing.T) {
	store := memory.NewRecordRepository()
	handler := NewInteractionHandler(&stubPollService{}, services.NewInteractionService(store))

	// No record exists: a foreign control must not even attempt a load,
	// so this cannot fail with poll-not-found.
	rec := postInteraction(t, handler, newComponentInteraction("600", "42", "giveaway_enter"))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, discord.ResponseTypeDeferredMessageUpdate, resp.Type)
	assert.Nil(t, resp.Data)
}

func TestHandleUnrecognizedPollControl(t *testing.T) {
	handler, store := newVotingHandler(t, "600")

	rec := postInteraction(t, handler, newComponentInteraction("600", "9", "poll_bogus"))

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)
	assert.Equal(t, services.ReplyUnknownID, resp.Data.Content)

	poll, err := store.Load(context.Background(), "600")
	require.NoError(t, err)
	assert.Empty(t, poll.YesVotes)
	assert.Empty(t, poll.NoVotes)
}

func TestHandleInvalidVoterID(t *testing.T) {
	handler, _ := newVotingHandler(t, "600")

	rec := postInteraction(t, handler, newComponentInteraction("600", "not-a-number", domain.ControlYes))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMissingPollRecordFails(t *testing.T) {
	store := memory.NewRecordRepository()
	handler := NewInteractionHandler(&stubPollService{}, services.NewInteractionService(store))

	rec := postInteraction(t, handler, newComponentInteraction("gone", "42", domain.ControlYes))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandlePollCommand(t *testing.T) {
	pollSvc := &stubPollService{
		created: &ports.CreatedPoll{MessageID: "900", Poll: domain.NewPoll("T", "D", "Y", "N")},
	}
	handler := NewInteractionHandler(pollSvc, nil)

	rec := postInteraction(t, handler, discord.Interaction{
		Type:      discord.InteractionTypeApplicationCommand,
		ChannelID: "chan-1",
		Data: &discord.InteractionData{
			Name: "poll",
			Options: []discord.CommandOption{
				{Name: "title", Value: "T"},
				{Name: "description", Value: "D"},
				{Name: "reason_to_vote_yes", Value: "Y"},
				{Name: "reason_to_vote_no", Value: "N"},
			},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Poll created!", resp.Data.Content)
	assert.Equal(t, discord.MessageFlagEphemeral, resp.Data.Flags)

	assert.Equal(t, ports.CreatePollInput{
		ChannelID:       "chan-1",
		Title:           "T",
		Description:     "D",
		ReasonToVoteYes: "Y",
		ReasonToVoteNo:  "N",
	}, pollSvc.gotInput)
}

func TestHandlePollCommandCreateFailure(t *testing.T) {
	handler := NewInteractionHandler(&stubPollService{err: errors.New("store down")}, nil)

	rec := postInteraction(t, handler, discord.Interaction{
		Type: discord.InteractionTypeApplicationCommand,
		Data: &discord.InteractionData{Name: "poll"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleUnknownCommand(t *testing.T) {
	handler := NewInteractionHandler(&stubPollService{}, nil)

	rec := postInteraction(t, handler, discord.Interaction{
		Type: discord.InteractionTypeApplicationCommand,
		Data: &discord.InteractionData{Name: "ban"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMalformedPayload(t *testing.T) {
	handler := NewInteractionHandler(&stubPollService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
