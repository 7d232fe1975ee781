package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/vncsmyrnk/pollbot/internal/adapters/discord"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// InteractionHandler serves the platform's interactions webhook: the
// `poll` slash command and the button presses on poll messages.
type InteractionHandler struct {
	polls ports.PollService
	votes ports.InteractionService
}

func NewInteractionHandler(polls ports.PollService, votes ports.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		polls: polls,
		votes: votes,
	}
}

func (h *InteractionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var interaction discord.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		http.Error(w, "invalid interaction payload", http.StatusBadRequest)
		return
	}

	switch interaction.Type {
	case discord.InteractionTypePing:
		respond(w, discord.InteractionResponse{Type: discord.ResponseTypePong})
	case discord.InteractionTypeApplicationCommand:
		h.handleCommand(w, r, &interaction)
	case discord.InteractionTypeMessageComponent:
		h.handleComponent(w, r, &interaction)
	default:
		http.Error(w, "unsupported interaction type", http.StatusBadRequest)
	}
}

func (h *InteractionHandler) handleCommand(w http.ResponseWriter, r *http.Request, interaction *discord.Interaction) {
	if interaction.Data == nil || interaction.Data.Name != "poll" {
		http.Error(w, "unknown command", http.StatusBadRequest)
		return
	}

	input := ports.CreatePollInput{
		ChannelID:       interaction.ChannelID,
		Title:           interaction.Data.Option("title"),
		Description:     interaction.Data.Option("description"),
		ReasonToVoteYes: interaction.Data.Option("reason_to_vote_yes"),
		ReasonToVoteNo:  interaction.Data.Option("reason_to_vote_no"),
	}

	created, err := h.polls.Create(r.Context(), input)
	if err != nil {
		log.Printf("poll creation failed: %v", err)
		http.Error(w, "failed to create poll", http.StatusInternalServerError)
		return
	}

	log.Printf("poll %s created in channel %s", created.MessageID, input.ChannelID)
	respondEphemeral(w, "Poll created!")
}

func (h *InteractionHandler) handleComponent(w http.ResponseWriter, r *http.Request, interaction *discord.Interaction) {
	var controlID string
	if interaction.Data != nil {
		controlID = interaction.Data.CustomID
	}

	action, ok := domain.ClassifyControl(controlID)
	if !ok {
		// Not our control. The webhook must answer every interaction, so
		// acknowledge without any visible response and take no control.
		respond(w, discord.InteractionResponse{Type: discord.ResponseTypeDeferredMessageUpdate})
		return
	}

	if interaction.Message == nil {
		http.Error(w, "missing message reference", http.StatusBadRequest)
		return
	}

	voterID, err := strconv.ParseUint(interaction.UserID(), 10, 64)
	if err != nil {
		http.Error(w, domain.ErrInvalidVoter.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.votes.Handle(r.Context(), ports.VoteInput{
		PollID: interaction.Message.ID,
		Voter:  domain.Voter(voterID),
		Action: action,
	})
	if err != nil {
		log.Printf("interaction on poll %s failed: %v", interaction.Message.ID, err)
		http.Error(w, "failed to handle interaction", http.StatusInternalServerError)
		return
	}

	respondEphemeral(w, reply)
}

func respondEphemeral(w http.ResponseWriter, content string) {
	respond(w, discord.InteractionResponse{
		Type: discord.ResponseTypeChannelMessage,
		Data: &discord.ResponseData{
			Content: content,
			Flags:   discord.MessageFlagEphemeral,
		},
	})
}

func respond(w http.ResponseWriter, response discord.InteractionResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("failed to encode interaction response: %v", err)
	}
}
