package session

import (
	"sync"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Registry owns session creation and teardown. An unknown session id is
// never an error: it is treated as an implicit first use. No automatic
// idle eviction is performed; hosts add that if needed.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	start    *world.Location
}

// NewRegistry creates a registry whose sessions start at the given
// location.
func NewRegistry(start *world.Location) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		start:    start,
	}
}

// Get returns the session for id, implicitly creating it on first use.
// New sessions begin in StateWaitingForStartAnswer.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.UpdatedAt = time.Now()
		return s
	}

	now := time.Now()
	s := &Session{
		ID:        id,
		Player:    world.NewPlayer(id, r.start),
		State:     StateWaitingForStartAnswer,
		Context:   NewContext(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions[id] = s
	return s
}

// Lookup returns the session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Remove discards the session's player state and parser context.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
