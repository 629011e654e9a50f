package world

import (
	"sort"
	"strings"
)

// Placement selects how a container's contents are tracked in the world.
type Placement string

const (
	// PlacementInventory contents are recorded by name only; the
	// container and, implicitly, its contents move with whichever holder
	// carries the container itself.
	PlacementInventory Placement = "inventory"
	// PlacementLocation contents remain real, independently tracked
	// items in the location's item list, with an item-to-container index
	// kept on the location.
	PlacementLocation Placement = "location"
)

// Container is the capability shared by items and scenery that can hold
// other items. Membership is by lower-cased name, not object identity: two
// same-named items inside one container are indistinguishable.
type Container struct {
	capacity  int
	allowed   map[string]bool
	preps     []string
	contents  map[string]bool
	placement Placement
	gate      Openable
}

// NewContainer creates a container. Capacity 0 means unlimited.
func NewContainer(capacity int, placement Placement) *Container {
	return &Container{
		capacity:  capacity,
		contents:  make(map[string]bool),
		placement: placement,
	}
}

// AllowOnly restricts the container to the named items. An empty allowed
// set (the default) is unrestricted.
func (c *Container) AllowOnly(names ...string) {
	c.allowed = make(map[string]bool, len(names))
	for _, n := range names {
		c.allowed[strings.ToLower(n)] = true
	}
}

// SetPrepositions sets the container's preferred prepositions. An empty
// list accepts any recognized preposition.
func (c *Container) SetPrepositions(preps ...string) {
	c.preps = preps
}

// SetGate attaches an open/closed gate. A gated container rejects items
// while the gate is not open.
func (c *Container) SetGate(gate Openable) { c.gate = gate }

// Gate returns the container's gate, or nil when ungated.
func (c *Container) Gate() Openable { return c.gate }

// Placement returns the container's placement semantics.
func (c *Container) Placement() Placement { return c.placement }

// Capacity returns the configured capacity; 0 means unlimited.
func (c *Container) Capacity() int { return c.capacity }

// AcceptsPreposition reports whether the requested preposition is among
// the container's preferred prepositions.
func (c *Container) AcceptsPreposition(prep string) bool {
	if len(c.preps) == 0 {
		return true
	}
	for _, p := range c.preps {
		if strings.EqualFold(p, prep) {
			return true
		}
	}
	return false
}

// Prepositions returns the preferred preposition list.
func (c *Container) Prepositions() []string { return c.preps }

// CanAccept reports whether the named item may be inserted now. Checks
// run in order: closed gate, capacity, allowed set.
func (c *Container) CanAccept(itemName string) error {
	if c.gate != nil && !c.gate.IsOpen() {
		return ErrContainerClosed
	}
	if c.capacity > 0 && len(c.contents) >= c.capacity {
		return ErrContainerFull
	}
	if len(c.allowed) > 0 && !c.allowed[strings.ToLower(itemName)] {
		return ErrItemNotAllowed
	}
	return nil
}

// InsertItem records the named item as contained.
func (c *Container) InsertItem(name string) {
	c.contents[strings.ToLower(name)] = true
}

// RemoveItem removes the named item from the contents. Reports whether
// the item was contained.
func (c *Container) RemoveItem(name string) bool {
	key := strings.ToLower(name)
	if !c.contents[key] {
		return false
	}
	delete(c.contents, key)
	return true
}

// ContainsItem reports whether the named item is currently contained.
func (c *Container) ContainsItem(name string) bool {
	return c.contents[strings.ToLower(name)]
}

// CurrentCount returns the number of contained items.
func (c *Container) CurrentCount() int { return len(c.contents) }

// Contents returns the contained item names, sorted.
func (c *Container) Contents() []string {
	out := make([]string, 0, len(c.contents))
	for name := range c.contents {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// clear empties the container. Used by location reset.
func (c *Container) clear() {
	c.contents = make(map[string]bool)
}
