package engine

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/vocab"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// builtinHandlers returns the built-in handler for every core verb. Each
// sits at the end of its verb's dispatch chain.
func builtinHandlers() map[string]Handler {
	return map[string]Handler{
		"take":      takeHandler,
		"drop":      dropHandler,
		"look":      lookHandler,
		"inventory": inventoryHandler,
		"go":        goHandler,
		"put":       putHandler,
		"open":      openHandler,
		"unlock":    unlockHandler,
		"hint":      hintHandler,
	}
}

// resolveName resolves an object name, falling back to implied-object
// resolution when the name is a pronoun that did not match literally.
func resolveName(f *Facade, verb, name string) (*Resolved, bool) {
	if r, ok := f.ResolveObject(name); ok {
		return r, true
	}
	if f.Context().IsPronoun(name) {
		return f.ResolveImpliedObject(verb)
	}
	return nil, false
}

func takeHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	t := f.Text()

	names := cmd.DirectObjects
	if len(names) == 0 {
		r, ok := f.ResolveImpliedObject("take")
		if !ok || r.Item == nil {
			return t.WhichObject("take"), true
		}
		names = []string{r.Item.Name()}
	}

	var lines []string
	for _, name := range names {
		lines = append(lines, takeOne(p, f, name))
	}
	return strings.Join(lines, "\n"), true
}

func takeOne(p *world.Player, f *Facade, name string) string {
	t := f.Text()
	r, ok := resolveName(f, "take", name)
	if !ok {
		return t.NotFound(name)
	}

	switch r.Scope {
	case ScopeInventory:
		return t.AlreadyCarrying(r.Item.Name())
	case ScopeLocation:
		it := p.Location().RemoveItem(r.Item.Name())
		if it == nil {
			return t.NotFound(name)
		}
		p.AddItem(it)
		f.Context().Remember(it.Name())
		f.SetHighlight(it.Name())
		return t.Taken(it.Name())
	default:
		return t.CannotTake(name)
	}
}

func dropHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	t := f.Text()

	names := cmd.DirectObjects
	if len(names) == 0 {
		r, ok := f.ResolveImpliedObject("drop")
		if !ok || r.Item == nil {
			return t.WhichObject("drop"), true
		}
		names = []string{r.Item.Name()}
	}

	var lines []string
	for _, name := range names {
		lines = append(lines, dropOne(p, f, name))
	}
	return strings.Join(lines, "\n"), true
}

func dropOne(p *world.Player, f *Facade, name string) string {
	t := f.Text()

	target := name
	if !p.Carries(target) && f.Context().IsPronoun(target) {
		if r, ok := f.ResolveImpliedObject("drop"); ok && r.Item != nil {
			target = r.Item.Name()
		}
	}

	it := p.RemoveItem(target)
	if it == nil {
		return t.NotCarrying(name)
	}
	p.Location().AddItem(it)
	f.Context().Remember(it.Name())
	return t.Dropped(it.Name())
}

func lookHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	t := f.Text()

	if len(cmd.DirectObjects) == 0 {
		return describeLocation(p.Location()), true
	}

	name := cmd.DirectObjects[0]
	r, ok := resolveName(f, "look", name)
	if !ok {
		return t.NotFound(name), true
	}
	f.Context().Remember(r.Entity.Name())

	switch {
	case r.Item != nil && r.Item.Detail != "":
		return r.Item.Detail, true
	case r.Scenery != nil && r.Scenery.Description != "":
		return r.Scenery.Description, true
	default:
		return t.NothingSpecial(name), true
	}
}

func inventoryHandler(p *world.Player, _ command.ParsedCommand, f *Facade) (string, bool) {
	var lines []string
	for _, it := range p.Inventory() {
		if it.InventoryDescription != "" {
			lines = append(lines, it.InventoryDescription)
		} else {
			lines = append(lines, it.Name())
		}
	}
	return f.Text().Inventory(lines), true
}

func goHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	t := f.Text()

	if len(cmd.DirectObjects) == 0 {
		return t.WhichObject("go"), true
	}
	dir, ok := vocab.CanonicalDirection(cmd.DirectObjects[0])
	if !ok {
		return t.CannotGo(cmd.DirectObjects[0]), true
	}
	dest, ok := p.Location().ExitTo(dir)
	if !ok {
		return t.CannotGo(dir), true
	}

	if lock := dest.Lock(); lock != nil && !lock.IsOpen() {
		// Entering attempts the lock without a code; possession of a
		// required item satisfies it.
		unlocked, msg := lock.Unlock(p, "")
		if !unlocked {
			if lock.CodeGated() {
				f.RequestUnlockCode(lock)
				return msg + "\n" + t.CodePrompt(lock.Name()), true
			}
			return msg, true
		}
		p.MoveTo(dest)
		f.Context().UpdateLocation(dest.Key())
		return msg + "\n" + describeLocation(dest), true
	}

	p.MoveTo(dest)
	f.Context().UpdateLocation(dest.Key())
	return describeLocation(dest), true
}

func putHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	t := f.Text()

	if len(cmd.DirectObjects) == 0 || len(cmd.IndirectObjects) == 0 {
		return t.WhichObject("put"), true
	}
	prep := cmd.Preposition
	if prep == "" {
		prep = "in"
	}
	containerName := cmd.IndirectObjects[0]

	var lines []string
	for _, name := range cmd.DirectObjects {
		itemName := name
		if !p.Carries(itemName) && f.Context().IsPronoun(itemName) {
			if r, ok := f.ResolveImpliedObject("put"); ok && r.Item != nil {
				itemName = r.Item.Name()
			}
		}
		if err := f.PutItem(itemName, prep, containerName); err != nil {
			lines = append(lines, f.ViolationMessage(err, itemName, prep, containerName))
			continue
		}
		f.Context().Remember(itemName)
		lines = append(lines, t.PutSuccess(itemName, prep, containerName))
	}
	return strings.Join(lines, "\n"), true
}

func openHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	return attemptOpenable(p, cmd, f, false)
}

func unlockHandler(p *world.Player, cmd command.ParsedCommand, f *Facade) (string, bool) {
	return attemptOpenable(p, cmd, f, true)
}

// attemptOpenable runs an open or unlock attempt against a resolved
// openable target. A failed attempt without a code against a code-gated
// target enters the matching one-shot code-entry state.
func attemptOpenable(p *world.Player, cmd command.ParsedCommand, f *Facade, unlock bool) (string, bool) {
	t := f.Text()
	verb := "open"
	if unlock {
		verb = "unlock"
	}

	if len(cmd.DirectObjects) == 0 {
		return t.WhichObject(verb), true
	}
	name := cmd.DirectObjects[0]
	r, ok := resolveName(f, verb, name)
	if !ok {
		return t.NotFound(name), true
	}
	target := openableFrom(r)
	if target == nil {
		return t.NotOpenable(name), true
	}

	code := ""
	if len(cmd.IndirectObjects) > 0 {
		code = cmd.IndirectObjects[0]
	}

	var success bool
	var msg string
	if unlock {
		success, msg = target.Unlock(p, code)
	} else {
		success, msg = target.Open(p, code)
	}

	if !success && code == "" && target.CodeGated() {
		if unlock {
			f.RequestUnlockCode(target)
		} else {
			f.RequestOpenCode(target)
		}
		return msg + "\n" + t.CodePrompt(target.Name()), true
	}

	f.Context().Remember(target.Name())
	return msg, true
}

// openableFrom extracts the openable capability of a resolution: the
// target itself, or the gate of its container.
func openableFrom(r *Resolved) world.Openable {
	if r.Openable != nil {
		return r.Openable
	}
	if r.Item != nil && r.Item.Container() != nil {
		return r.Item.Container().Gate()
	}
	if r.Scenery != nil && r.Scenery.Container() != nil {
		return r.Scenery.Container().Gate()
	}
	return nil
}

func hintHandler(_ *world.Player, _ command.ParsedCommand, f *Facade) (string, bool) {
	t := f.Text()
	hints := f.World().Hints()
	s := f.Session()
	if s.HintPhase >= len(hints) {
		return t.NoMoreHints(), true
	}
	msg := t.Hint(hints[s.HintPhase])
	s.HintPhase++
	return msg, true
}

// describeLocation composes the displayed description of a location: its
// (possibly overridden) description plus the location descriptions of
// the visible items lying there.
func describeLocation(loc *world.Location) string {
	parts := []string{loc.Description()}
	for _, it := range loc.VisibleItems() {
		if it.LocationDescription != "" {
			parts = append(parts, it.LocationDescription)
		}
	}
	return strings.Join(parts, "\n")
}
