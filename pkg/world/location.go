package world

import (
	"sort"
	"strings"
)

// Location is a place in the game world. It exclusively owns its item
// collections and its item-to-container index; a containment relation is a
// non-owning back-reference, never a second ownership path.
type Location struct {
	key         string
	name        string
	description string

	exits map[string]*Location
	lock  Openable

	items       []*Item
	scenery     []*Scenery
	containment map[string]*Container

	initialItems []*Item
}

// NewLocation creates a location. key is the stable identifier used by
// exits and session snapshots.
func NewLocation(key, name, description string) *Location {
	return &Location{
		key:         key,
		name:        name,
		description: description,
		exits:       make(map[string]*Location),
		containment: make(map[string]*Container),
	}
}

func (l *Location) Key() string  { return l.key }
func (l *Location) Name() string { return l.name }

// AddExit connects a direction to a destination location.
func (l *Location) AddExit(direction string, to *Location) {
	l.exits[strings.ToLower(direction)] = to
}

// ExitTo returns the destination in the given direction.
func (l *Location) ExitTo(direction string) (*Location, bool) {
	to, ok := l.exits[strings.ToLower(direction)]
	return to, ok
}

// Directions returns the currently valid movement directions, sorted.
func (l *Location) Directions() []string {
	out := make([]string, 0, len(l.exits))
	for d := range l.exits {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// SetLock attaches an entry guard. Movement into the location requires
// the lock to be open.
func (l *Location) SetLock(lock Openable) { l.lock = lock }

// Lock returns the location's entry guard, or nil.
func (l *Location) Lock() Openable { return l.lock }

// AddScenery attaches a scenery object.
func (l *Location) AddScenery(s *Scenery) {
	l.scenery = append(l.scenery, s)
}

// Scenery returns the location's scenery objects.
func (l *Location) Scenery() []*Scenery { return l.scenery }

// FindScenery returns the first scenery matching name, or nil.
func (l *Location) FindScenery(name string) *Scenery {
	for _, s := range l.scenery {
		if s.Matches(name) {
			return s
		}
	}
	return nil
}

// PlaceItem adds an item during world construction, recording it as part
// of the location's initial configuration.
func (l *Location) PlaceItem(it *Item) {
	l.items = append(l.items, it)
	l.initialItems = append(l.initialItems, it)
}

// AddItem adds an item at runtime (a drop). The item becomes visible and
// any reveal override is cleared, so the normal description resumes.
func (l *Location) AddItem(it *Item) {
	it.clearReveal()
	it.visibility = VisibilityNormal
	l.items = append(l.items, it)
}

// RemoveItem removes the first visible item matching name and returns it.
// The item's containment relation, its membership in the holding
// container, and its reveal override are all cleared in the same
// operation, preserving the containment invariant.
func (l *Location) RemoveItem(name string) *Item {
	for i, it := range l.items {
		if it.visibility == VisibilityHidden || !it.Matches(name) {
			continue
		}
		l.items = append(l.items[:i], l.items[i+1:]...)
		l.removeRelation(it.Name())
		it.clearReveal()
		return it
	}
	return nil
}

// VisibleItems returns the items currently visible at the location, in
// first-added order.
func (l *Location) VisibleItems() []*Item {
	var out []*Item
	for _, it := range l.items {
		if it.visibility != VisibilityHidden {
			out = append(out, it)
		}
	}
	return out
}

// FindVisibleItem returns the first visible item matching name, or nil.
func (l *Location) FindVisibleItem(name string) *Item {
	for _, it := range l.items {
		if it.visibility != VisibilityHidden && it.Matches(name) {
			return it
		}
	}
	return nil
}

// IsItemHiddenByName reports whether an item of that name is currently
// hidden at the location.
func (l *Location) IsItemHiddenByName(name string) bool {
	for _, it := range l.items {
		if it.visibility == VisibilityHidden && it.Matches(name) {
			return true
		}
	}
	return false
}

// RevealedItemNames returns the names of items currently in the
// revealed state at the location.
func (l *Location) RevealedItemNames() []string {
	var out []string
	for _, it := range l.items {
		if it.visibility == VisibilityRevealed {
			out = append(out, it.Name())
		}
	}
	return out
}

// RevealHiddenItemByName makes a hidden item visible. Its reveal
// description, when configured, overrides the location description until
// the item is taken. Reports whether an item was revealed.
func (l *Location) RevealHiddenItemByName(name string) bool {
	for _, it := range l.items {
		if it.visibility == VisibilityHidden && it.Matches(name) {
			return it.reveal()
		}
	}
	return false
}

// Description returns the displayed location description: the reveal
// override of a revealed item when one is active, else the configured
// description.
func (l *Location) Description() string {
	for _, it := range l.items {
		if it.visibility == VisibilityRevealed && it.RevealDescription != "" {
			return it.RevealDescription
		}
	}
	return l.description
}

// AssignContainer records that the named item is held by the container.
// Callers must ensure the item is a member of the location's item
// collection.
func (l *Location) AssignContainer(itemName string, c *Container) {
	l.containment[strings.ToLower(itemName)] = c
}

// ContainerOf returns the container currently holding the named item.
func (l *Location) ContainerOf(itemName string) (*Container, bool) {
	c, ok := l.containment[strings.ToLower(itemName)]
	return c, ok
}

// IsItemInContainer reports whether the named item sits inside one of the
// location's containers.
func (l *Location) IsItemInContainer(itemName string) bool {
	_, ok := l.containment[strings.ToLower(itemName)]
	return ok
}

// removeRelation drops the containment relation and the container
// membership for the named item.
func (l *Location) removeRelation(itemName string) {
	key := strings.ToLower(itemName)
	if c, ok := l.containment[key]; ok {
		c.RemoveItem(itemName)
		delete(l.containment, key)
	}
}

// Reset returns the location to its initial configuration: item
// membership and visibility, containment index, scenery and item
// containers, and the entry lock.
func (l *Location) Reset() {
	l.items = make([]*Item, len(l.initialItems))
	copy(l.items, l.initialItems)
	for _, it := range l.items {
		it.resetVisibility()
		if c := it.Container(); c != nil {
			c.clear()
		}
	}
	l.containment = make(map[string]*Container)
	for _, s := range l.scenery {
		if c := s.Container(); c != nil {
			c.clear()
		}
	}
	if l.lock != nil {
		l.lock.Reset()
	}
}
