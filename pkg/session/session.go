package session

import (
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// GameState is the per-session state-machine tag governing non-gameplay
// prompts.
type GameState string

const (
	// StateWaitingForStartAnswer is the initial state: the session is
	// being shown the intro and asked whether to begin.
	StateWaitingForStartAnswer GameState = "waiting_for_start_answer"
	// StatePlaying routes input through the ordinary command pipeline.
	StatePlaying GameState = "playing"
	// StateWaitingForQuitConfirmation awaits a yes/no to quitting.
	StateWaitingForQuitConfirmation GameState = "waiting_for_quit_confirmation"
	// StateWaitingForRestartConfirmation awaits a yes/no to restarting.
	StateWaitingForRestartConfirmation GameState = "waiting_for_restart_confirmation"
	// StateWaitingForUnlockCode treats the next input as an unlock code
	// for the pending target.
	StateWaitingForUnlockCode GameState = "waiting_for_unlock_code"
	// StateWaitingForOpenCode treats the next input as an open code for
	// the pending target.
	StateWaitingForOpenCode GameState = "waiting_for_open_code"
)

// Session is one player's running game: the player, the state-machine
// tag, the pending openable awaiting a code, and the parser context.
type Session struct {
	ID      string
	Player  *world.Player
	State   GameState
	Context *Context

	// PendingTarget is the openable the session is being prompted to
	// supply a code for. Set only in the code-entry states.
	PendingTarget world.Openable

	// HintPhase indexes the keyed hint progression.
	HintPhase int

	CreatedAt time.Time
	UpdatedAt time.Time
}
