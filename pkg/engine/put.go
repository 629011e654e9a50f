package engine

import (
	"errors"

	"github.com/jwebster45206/adventure-engine/pkg/text"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// putItem is the put protocol: it moves an item into a container,
// validating every step before any mutation, so a failure at any step
// leaves all state exactly as it was.
func putItem(p *world.Player, itemName, prep, containerName string) error {
	loc := p.Location()

	// 1. Locate the item: acting holder's inventory, else the current
	// location's visible items.
	var item *world.Item
	fromInventory := false
	if it := p.FindItem(itemName); it != nil {
		item = it
		fromInventory = true
	} else if it := loc.FindVisibleItem(itemName); it != nil {
		item = it
	} else {
		return world.ErrItemNotPresent
	}

	// 2. Locate the target container: inventory-reachable container
	// items first, else location scenery containers.
	var target *world.Container
	var ownerItem *world.Item
	containerCarried := false
	for _, it := range p.Inventory() {
		if it.Container() != nil && it.Matches(containerName) {
			target = it.Container()
			ownerItem = it
			containerCarried = true
			break
		}
	}
	if target == nil {
		for _, it := range loc.VisibleItems() {
			if it.Container() != nil && it.Matches(containerName) {
				target = it.Container()
				ownerItem = it
				break
			}
		}
	}
	if target == nil {
		if s := loc.FindScenery(containerName); s != nil && s.Container() != nil {
			target = s.Container()
		}
	}
	if target == nil {
		return world.ErrContainerNotFound
	}

	// 3. Direct self-containment guard. Indirect cycles (A in B, B in A)
	// are disallowed by documentation; no recursive traversal over
	// containment exists that could loop on them.
	if ownerItem == item {
		return world.ErrCircularContainment
	}

	// 4. Preposition validation.
	if !target.AcceptsPreposition(prep) {
		return world.ErrBadPreposition
	}

	// 5. Acceptance: closed gate, capacity, allowed set.
	if err := target.CanAccept(item.Name()); err != nil {
		return err
	}

	// 6. Perform the move. Removing from the current holder deregisters
	// any prior containment relation in the same operation.
	if fromInventory {
		p.RemoveItem(item.Name())
	} else {
		loc.RemoveItem(item.Name())
	}
	target.InsertItem(item.Name())

	if target.Placement() == world.PlacementInventory && containerCarried {
		// The item stays with whatever holder has the container.
		p.AddItem(item)
		p.AssignContainer(item.Name(), target)
		return nil
	}
	// Location-style, or an inventory-style container lying at the
	// location: the item remains a tracked member of the location.
	loc.AddItem(item)
	loc.AssignContainer(item.Name(), target)
	return nil
}

// violationMessage maps each put-protocol failure to its distinct
// user-facing message.
func violationMessage(t text.Provider, err error, itemName, prep, containerName string) string {
	switch {
	case errors.Is(err, world.ErrItemNotPresent):
		return t.ItemNotPresent(itemName)
	case errors.Is(err, world.ErrContainerNotFound):
		return t.ContainerNotFound(containerName)
	case errors.Is(err, world.ErrCircularContainment):
		return t.CircularContainment(itemName)
	case errors.Is(err, world.ErrBadPreposition):
		return t.InvalidPreposition(containerName, prep)
	case errors.Is(err, world.ErrContainerClosed):
		return t.ContainerClosed(containerName)
	case errors.Is(err, world.ErrContainerFull):
		return t.ContainerFull(containerName)
	case errors.Is(err, world.ErrItemNotAllowed):
		return t.ItemNotAllowed(itemName, containerName)
	default:
		return err.Error()
	}
}
