package domain

import "strings"

// Control ids attached to the poll message's buttons. Every control
// owned by this system carries the ControlPrefix; ids without it belong
// to other systems and are never handled here.
const (
	ControlPrefix = "poll_"

	ControlYes  = "poll_yes"
	ControlNo   = "poll_no"
	ControlView = "poll_view"
)

// Action is the classified intent of one poll interaction.
type Action int

const (
	// ActionUnknown marks a control that carries our prefix but matches
	// no known control id. It is answered visibly, never silently dropped.
	ActionUnknown Action = iota
	ActionVoteYes
	ActionVoteNo
	ActionViewResults
)

// ClassifyControl maps a control id to an Action. ok is false when the
// id does not carry ControlPrefix, meaning the interaction is not ours
// and must be ignored without loading any record.
func ClassifyControl(controlID string) (action Action, ok bool) {
	if !strings.HasPrefix(controlID, ControlPrefix) {
		return ActionUnknown, false
	}

	switch controlID {
	case ControlYes:
		return ActionVoteYes, true
	case ControlNo:
		return ActionVoteNo, true
	case ControlView:
		return ActionViewResults, true
	default:
		return ActionUnknown, true
	}
}
