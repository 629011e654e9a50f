// Package session holds per-session ambient state: the pronoun context
// tracker, the game-state machine tag, and the session registry.
package session

import (
	"github.com/jwebster45206/adventure-engine/pkg/vocab"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Context is the per-session cache of recently referenced objects and the
// last-visited location, used for pronoun resolution. Context never
// survives a location change.
type Context struct {
	lastObjects  []string
	possessives  map[string]world.Nameable
	lastLocation string
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{possessives: make(map[string]world.Nameable)}
}

// Remember records the direct objects of the last command, most recent
// first.
func (c *Context) Remember(objects ...string) {
	if len(objects) == 0 {
		return
	}
	c.lastObjects = append([]string{}, objects...)
}

// LastObject returns the most recently referenced direct object.
func (c *Context) LastObject() (string, bool) {
	if len(c.lastObjects) == 0 {
		return "", false
	}
	return c.lastObjects[0], true
}

// LastObjects returns all direct objects of the last command.
func (c *Context) LastObjects() []string { return c.lastObjects }

// RememberPossessive records a possessive reference (name to entity).
func (c *Context) RememberPossessive(name string, entity world.Nameable) {
	c.possessives[name] = entity
}

// Possessive returns the entity recorded under a possessive reference.
func (c *Context) Possessive(name string) (world.Nameable, bool) {
	e, ok := c.possessives[name]
	return e, ok
}

// UpdateLocation records the session's location, clearing all cached
// references whenever it differs from the previously recorded one.
func (c *Context) UpdateLocation(key string) {
	if key == c.lastLocation {
		return
	}
	c.lastLocation = key
	c.lastObjects = nil
	c.possessives = make(map[string]world.Nameable)
}

// LastLocation returns the last recorded location key.
func (c *Context) LastLocation() string { return c.lastLocation }

// IsPronoun reports whether the word belongs to the closed pronoun set
// handlers use to decide on implied-object fallback.
func (c *Context) IsPronoun(word string) bool {
	return vocab.IsPronoun(word)
}
