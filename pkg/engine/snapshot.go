package engine

import (
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/session"
)

// Snapshot is the serializable mutable state of one session: enough to
// resume a session against a freshly built world. World topology itself
// is not captured; it is rebuilt from the definition. Revealed hidden
// items are captured so an in-progress reveal survives the rebuild.
type Snapshot struct {
	ID            string              `json:"id"`
	State         session.GameState   `json:"state"`
	Location      string              `json:"location"`
	Inventory     []string            `json:"inventory,omitempty"`
	Containment   map[string]string   `json:"containment,omitempty"` // item -> carried container item
	Revealed      map[string][]string `json:"revealed,omitempty"`    // location key -> revealed item names
	PendingTarget string              `json:"pending_target,omitempty"`
	PendingKind   string              `json:"pending_kind,omitempty"` // "unlock" or "open"
	HintPhase     int                 `json:"hint_phase,omitempty"`
	LastObjects   []string            `json:"last_objects,omitempty"`
	LastLocation  string              `json:"last_location,omitempty"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
