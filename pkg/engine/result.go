// Package engine wires the interaction pipeline: object resolution, verb
// dispatch, the put protocol, and the per-session state machine routing
// raw input through parse, resolve, dispatch and mutate.
package engine

import "github.com/jwebster45206/adventure-engine/pkg/session"

// Result is the structured outcome of processing one line of input.
type Result struct {
	// Message is the display text for the turn.
	Message string `json:"message"`
	// Highlight is an optional substring of Message a client may
	// emphasize, such as a newly acquired item name.
	Highlight string `json:"highlight,omitempty"`
	// State is the session's current state-machine tag.
	State session.GameState `json:"state"`
	// Directions are the currently valid movement directions.
	Directions []string `json:"directions,omitempty"`
}
