// Package command turns a raw player line into a structured command.
package command

// Type describes the structural shape of a parsed command.
type Type string

const (
	// TypeSingle is a plain verb-object command.
	TypeSingle Type = "single"
	// TypeConjunction carries multiple direct objects ("take key and lamp").
	TypeConjunction Type = "conjunction"
	// TypeSequence carries trailing sub-commands ("take key then go north").
	TypeSequence Type = "sequence"
)

// ParsedCommand is the immutable result of parsing one line of input.
type ParsedCommand struct {
	// Verb is the canonical verb, or the unknown verb unchanged.
	Verb string `json:"verb"`
	// DirectObjects are the object phrases naming the primary targets,
	// articles stripped, in input order.
	DirectObjects []string `json:"direct_objects,omitempty"`
	// IndirectObjects are the object phrases following the preposition.
	IndirectObjects []string `json:"indirect_objects,omitempty"`
	// Preposition is the recognized preposition splitting direct from
	// indirect objects, empty when none was found.
	Preposition string `json:"preposition,omitempty"`
	// Type is the structural type of the command.
	Type Type `json:"type"`
	// Implied is true when no explicit direct object was supplied.
	Implied bool `json:"implied,omitempty"`
	// Original is the verbatim input line, untouched.
	Original string `json:"original"`
	// Rest holds the raw trailing sub-commands of a sequence, in order.
	// Each entry is parsed and executed after the primary command.
	Rest []string `json:"rest,omitempty"`
}
