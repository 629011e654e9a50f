// Package storage persists session snapshots so play survives a process
// restart. World definitions are static files; only per-session state is
// stored.
package storage

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

// Storage is the session persistence interface consumed by the handlers.
type Storage interface {
	// Ping checks storage health
	Ping(ctx context.Context) error
	// Close releases storage resources
	Close() error

	// SaveSession persists a session snapshot under its ID
	SaveSession(ctx context.Context, snap *engine.Snapshot) error
	// LoadSession returns the snapshot for the ID, or nil when not found
	LoadSession(ctx context.Context, id string) (*engine.Snapshot, error)
	// DeleteSession removes the snapshot for the ID
	DeleteSession(ctx context.Context, id string) error
}
