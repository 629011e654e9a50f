package world

import "strings"

// Player is one session's actor. It exclusively owns its inventory list
// and its inventory-containment index.
type Player struct {
	name     string
	location *Location

	inventory   []*Item
	containment map[string]*Container
}

// NewPlayer creates a player at the given starting location.
func NewPlayer(name string, start *Location) *Player {
	return &Player{
		name:        name,
		location:    start,
		containment: make(map[string]*Container),
	}
}

func (p *Player) Name() string { return p.name }

// Location returns the player's current location.
func (p *Player) Location() *Location { return p.location }

// MoveTo moves the player to a location.
func (p *Player) MoveTo(loc *Location) { p.location = loc }

// Inventory returns the carried items in acquisition order.
func (p *Player) Inventory() []*Item { return p.inventory }

// InventoryNames returns the carried item names in acquisition order.
func (p *Player) InventoryNames() []string {
	out := make([]string, len(p.inventory))
	for i, it := range p.inventory {
		out[i] = it.Name()
	}
	return out
}

// AddItem puts an item into the inventory.
func (p *Player) AddItem(it *Item) {
	p.inventory = append(p.inventory, it)
}

// RemoveItem removes the first carried item matching name and returns it.
// The item's containment relation and container membership are cleared in
// the same operation.
func (p *Player) RemoveItem(name string) *Item {
	for i, it := range p.inventory {
		if !it.Matches(name) {
			continue
		}
		p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
		p.removeRelation(it.Name())
		return it
	}
	return nil
}

// FindItem returns the first carried item matching name, or nil.
func (p *Player) FindItem(name string) *Item {
	for _, it := range p.inventory {
		if it.Matches(name) {
			return it
		}
	}
	return nil
}

// Carries reports whether the player carries an item matching name.
func (p *Player) Carries(name string) bool {
	return p.FindItem(name) != nil
}

// AssignContainer records that the named carried item sits inside the
// container. Callers must ensure the item is in the inventory.
func (p *Player) AssignContainer(itemName string, c *Container) {
	p.containment[strings.ToLower(itemName)] = c
}

// ContainerOf returns the container holding the named carried item.
func (p *Player) ContainerOf(itemName string) (*Container, bool) {
	c, ok := p.containment[strings.ToLower(itemName)]
	return c, ok
}

// removeRelation drops the containment relation and container membership
// for the named item.
func (p *Player) removeRelation(itemName string) {
	key := strings.ToLower(itemName)
	if c, ok := p.containment[key]; ok {
		c.RemoveItem(itemName)
		delete(p.containment, key)
	}
}

// Reset discards the inventory and containment index and returns the
// player to the starting location.
func (p *Player) Reset(start *Location) {
	p.inventory = nil
	p.containment = make(map[string]*Container)
	p.location = start
}
