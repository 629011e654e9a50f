package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/text"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Facade is the surface handed to verb handlers. It exposes the
// resolver and containment operations so custom commands compose the
// same primitives the built-ins use.
type Facade struct {
	engine *Engine
	sess   *session.Session
}

// Player returns the acting player.
func (f *Facade) Player() *world.Player { return f.sess.Player }

// Session returns the acting session.
func (f *Facade) Session() *session.Session { return f.sess }

// Context returns the session's pronoun context tracker.
func (f *Facade) Context() *session.Context { return f.sess.Context }

// Text returns the engine's text provider.
func (f *Facade) Text() text.Provider { return f.engine.text }

// World returns the world graph.
func (f *Facade) World() *world.World { return f.engine.world }

// ResolveObject resolves a name against the priority scopes.
func (f *Facade) ResolveObject(name string) (*Resolved, bool) {
	return resolveObject(name, f.sess.Player)
}

// ResolveImpliedObject resolves an object from context when none was
// stated explicitly.
func (f *Facade) ResolveImpliedObject(verb string) (*Resolved, bool) {
	return resolveImpliedObject(verb, f.sess.Player, f.sess.Context)
}

// PutItem runs the atomic put protocol. A non-nil error is one of the
// world containment sentinels; no state was changed.
func (f *Facade) PutItem(itemName, prep, containerName string) error {
	return putItem(f.sess.Player, itemName, prep, containerName)
}

// ViolationMessage maps a put-protocol error to its distinct user-facing
// message.
func (f *Facade) ViolationMessage(err error, itemName, prep, containerName string) string {
	return violationMessage(f.engine.text, err, itemName, prep, containerName)
}

// RevealHiddenItem makes a hidden item at the player's location visible,
// activating its reveal description. Reports whether an item was
// revealed.
func (f *Facade) RevealHiddenItem(name string) bool {
	return f.sess.Player.Location().RevealHiddenItemByName(name)
}

// SetHighlight marks a substring of the response for client emphasis.
func (f *Facade) SetHighlight(s string) {
	f.engine.highlight = s
}

// RequestUnlockCode moves the session into the one-shot unlock-code
// prompt for the target.
func (f *Facade) RequestUnlockCode(target world.Openable) {
	f.sess.State = session.StateWaitingForUnlockCode
	f.sess.PendingTarget = target
}

// RequestOpenCode moves the session into the one-shot open-code prompt
// for the target.
func (f *Facade) RequestOpenCode(target world.Openable) {
	f.sess.State = session.StateWaitingForOpenCode
	f.sess.PendingTarget = target
}
