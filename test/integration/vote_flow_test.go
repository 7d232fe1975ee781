package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/pollbot/internal/adapters/discord"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

func createPoll(t *testing.T, app *testApp) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"channel_id":         "chan-1",
		"title":              "T",
		"description":        "D",
		"reason_to_vote_yes": "Y",
		"reason_to_vote_no":  "N",
	})
	resp, err := app.Client.Post(app.Server.URL+"/api/polls", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		MessageID string `json:"message_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.MessageID)
	return created.MessageID
}

func pressButton(t *testing.T, app *testApp, messageID, userID, customID string) discord.InteractionResponse {
	t.Helper()

	payload, err := json.Marshal(discord.Interaction{
		Type:    discord.InteractionTypeMessageComponent,
		Data:    &discord.InteractionData{CustomID: customID},
		Message: &discord.Message{ID: messageID},
		Member:  &discord.Member{User: &discord.User{ID: userID}},
	})
	require.NoError(t, err)

	resp, err := app.Client.Do(app.signedInteractionRequest(t, payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded discord.InteractionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestVoteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	messageID := createPoll(t, app)

	// Fresh poll: both sequences stored empty.
	var record string
	err := app.DB.QueryRow(`SELECT record::text FROM poll_records WHERE id = $1`, messageID).Scan(&record)
	require.NoError(t, err)
	assert.Contains(t, record, `"yes_votes": []`)
	assert.Contains(t, record, `"no_votes": []`)

	// Voter 42 votes yes.
	resp := pressButton(t, app, messageID, "42", domain.ControlYes)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "You voted yes!", resp.Data.Content)
	assert.Equal(t, discord.MessageFlagEphemeral, resp.Data.Flags)

	// Voter 42 tries to flip to no.
	resp = pressButton(t, app, messageID, "42", domain.ControlNo)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "You already voted!", resp.Data.Content)

	// Voter 7 views the tally.
	resp = pressButton(t, app, messageID, "7", domain.ControlView)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Yes: 1 No: 0", resp.Data.Content)

	// Voter 9 presses a prefixed but unknown control.
	resp = pressButton(t, app, messageID, "9", "poll_bogus")
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Unknown id", resp.Data.Content)

	// The record holds exactly one yes vote from 42 and nothing else.
	stored, err := app.Store.Load(context.Background(), messageID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Voter{42}, stored.YesVotes)
	assert.Empty(t, stored.NoVotes)
}

func TestWebhookRejectsUnsignedRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := app.Client.Post(app.Server.URL+"/interactions", "application/json", bytes.NewReader([]byte(`{"type":1}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
