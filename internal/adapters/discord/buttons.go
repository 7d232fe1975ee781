package discord

import "github.com/vncsmyrnk/pollbot/internal/core/domain"

// PollButtons is the action row attached to every poll message. The
// buttons never change, so the row is built once at startup and reused;
// it is read-only after initialization.
var PollButtons = ActionRow{
	Type: ComponentTypeActionRow,
	Components: []Button{
		{
			Type:     ComponentTypeButton,
			Style:    ButtonStyleSuccess,
			Label:    "Yes!",
			CustomID: domain.ControlYes,
		},
		{
			Type:     ComponentTypeButton,
			Style:    ButtonStyleDanger,
			Label:    "No!",
			CustomID: domain.ControlNo,
		},
		{
			Type:     ComponentTypeButton,
			Style:    ButtonStylePrimary,
			Label:    "View Results",
			CustomID: domain.ControlView,
		},
	},
}
