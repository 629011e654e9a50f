package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Scope identifies which resolution scope produced a match.
type Scope string

const (
	ScopeInventory Scope = "inventory"
	ScopeLocation  Scope = "location"
	ScopeScenery   Scope = "scenery"
	ScopeOpenable  Scope = "openable"
)

// Resolved is a successful object resolution. Exactly one of Item,
// Scenery or Openable is set, matching Scope; Entity always is.
type Resolved struct {
	Entity   world.Nameable
	Scope    Scope
	Item     *world.Item
	Scenery  *world.Scenery
	Openable world.Openable
}

// resolveObject maps an object name to a concrete world entity, searching
// in fixed priority order: player inventory, visible items at the current
// location, scenery there, then openable targets of the location and its
// neighbors. The first scope yielding a match wins; ties within a scope
// resolve to first-added order.
func resolveObject(name string, p *world.Player) (*Resolved, bool) {
	if it := p.FindItem(name); it != nil {
		return &Resolved{Entity: it, Scope: ScopeInventory, Item: it}, true
	}

	loc := p.Location()
	if it := loc.FindVisibleItem(name); it != nil {
		return &Resolved{Entity: it, Scope: ScopeLocation, Item: it}, true
	}
	if s := loc.FindScenery(name); s != nil {
		return &Resolved{Entity: s, Scope: ScopeScenery, Scenery: s}, true
	}
	if o := findOpenable(name, loc); o != nil {
		return &Resolved{Entity: o, Scope: ScopeOpenable, Openable: o}, true
	}
	return nil, false
}

// findOpenable searches the unlock/open targets reachable from the
// location: its own lock and the locks of adjacent locations.
func findOpenable(name string, loc *world.Location) world.Openable {
	if lock := loc.Lock(); lock != nil && lock.Matches(name) {
		return lock
	}
	for _, dir := range loc.Directions() {
		next, ok := loc.ExitTo(dir)
		if !ok {
			continue
		}
		if lock := next.Lock(); lock != nil && lock.Matches(name) {
			return lock
		}
	}
	return nil
}

// resolveImpliedObject resolves an object when the player supplied none,
// or a pronoun that could not be matched literally. It succeeds only when
// the context tracker holds an unambiguous recent reference that still
// resolves, or exactly one plausible candidate exists for the verb.
// Otherwise it fails and the caller must surface a clarification rather
// than guessing.
func resolveImpliedObject(verb string, p *world.Player, ctx *session.Context) (*Resolved, bool) {
	if last, ok := ctx.LastObject(); ok && len(ctx.LastObjects()) == 1 {
		if r, ok := resolveObject(last, p); ok {
			return r, true
		}
	}

	candidates := impliedCandidates(verb, p)
	if len(candidates) == 1 {
		return resolveObject(candidates[0].Name(), p)
	}
	return nil, false
}

// impliedCandidates returns the plausible targets for a verb with no
// explicit object: carried items for drop, visible location items
// otherwise.
func impliedCandidates(verb string, p *world.Player) []*world.Item {
	if verb == "drop" {
		return p.Inventory()
	}
	return p.Location().VisibleItems()
}
