package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

const defaultBaseURL = "https://discord.com/api/v10"

const pollEmbedColor = 0x00FF00

// Client is a minimal REST client for the platform's bot API. It
// implements ports.Messenger.
type Client struct {
	// BaseURL may be overridden in tests.
	BaseURL string

	httpClient *http.Client
	token      string
	appID      string
}

func NewClient(token, appID string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		token:      token,
		appID:      appID,
	}
}

var _ ports.Messenger = (*Client)(nil)

type createMessageRequest struct {
	Content      string      `json:"content,omitempty"`
	Embeds       []Embed     `json:"embeds,omitempty"`
	Components   []ActionRow `json:"components,omitempty"`
	Nonce        string      `json:"nonce,omitempty"`
	EnforceNonce bool        `json:"enforce_nonce,omitempty"`
}

// PublishPoll posts the public poll message (embed plus the static
// button row) into channelID and returns the created message's id.
func (c *Client) PublishPoll(ctx context.Context, channelID string, poll *domain.Poll) (string, error) {
	req := createMessageRequest{
		Embeds:     []Embed{pollEmbed(poll)},
		Components: []ActionRow{PollButtons},
		// A nonce lets the platform drop duplicate deliveries on retry.
		Nonce:        uuid.NewString(),
		EnforceNonce: true,
	}

	var created Message
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	if err := c.do(ctx, http.MethodPost, path, req, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

// RegisterCommands registers the global `poll` slash command.
func (c *Client) RegisterCommands(ctx context.Context) error {
	commands := []Command{
		{
			Name:        "poll",
			Description: "Create a yes/no poll",
			Options: []CommandOptionSpec{
				{Type: CommandOptionTypeString, Name: "title", Description: "Poll title", Required: true},
				{Type: CommandOptionTypeString, Name: "description", Description: "What is being decided", Required: true},
				{Type: CommandOptionTypeString, Name: "reason_to_vote_yes", Description: "Why vote yes", Required: true},
				{Type: CommandOptionTypeString, Name: "reason_to_vote_no", Description: "Why vote no", Required: true},
			},
		},
	}

	path := fmt.Sprintf("/applications/%s/commands", c.appID)
	return c.do(ctx, http.MethodPut, path, commands, nil)
}

func pollEmbed(poll *domain.Poll) Embed {
	return Embed{
		Title:       poll.Title,
		Description: poll.Description,
		Color:       pollEmbedColor,
		Fields: []EmbedField{
			{Name: "Yes", Value: poll.ReasonToVoteYes, Inline: true},
			{Name: "No", Value: poll.ReasonToVoteNo, Inline: true},
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("request %s %s failed: status %d: %s", method, path, resp.StatusCode, detail)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
		}
	}

	return nil
}
