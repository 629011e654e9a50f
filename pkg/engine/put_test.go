package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// putFixture builds a location with a wall that only takes a ladder "on",
// a one-slot chest, a closed box, and a player carrying a ladder, a coin
// and a satchel container.
func putFixture() (*world.Player, *world.Location) {
	loc := world.NewLocation("yard", "Yard", "An overgrown yard.")

	wall := world.NewScenery("wall", "A high brick wall.")
	wallTop := world.NewContainer(0, world.PlacementLocation)
	wallTop.AllowOnly("ladder")
	wallTop.SetPrepositions("on")
	wall.SetContainer(wallTop)
	loc.AddScenery(wall)

	chest := world.NewScenery("chest", "A small chest.")
	chestBox := world.NewContainer(1, world.PlacementLocation)
	chest.SetContainer(chestBox)
	loc.AddScenery(chest)

	box := world.NewScenery("box", "A latched box.")
	boxSpace := world.NewContainer(0, world.PlacementLocation)
	lid := world.NewCodeLock("lid")
	lid.SetState(false, false) // unlocked but closed
	boxSpace.SetGate(lid)
	box.SetContainer(boxSpace)
	loc.AddScenery(box)

	p := world.NewPlayer("tester", loc)
	p.AddItem(world.NewItem("ladder"))
	p.AddItem(world.NewItem("coin"))
	satchel := world.NewItem("satchel")
	satchel.SetContainer(world.NewContainer(0, world.PlacementInventory))
	p.AddItem(satchel)
	return p, loc
}

// worldState captures everything the put protocol may touch.
type worldState struct {
	Inventory     []string
	LocationItems []string
	WallContents  []string
	ChestContents []string
	BoxContents   []string
	InWall        bool
	InChest       bool
}

func captureState(p *world.Player, loc *world.Location) worldState {
	var locItems []string
	for _, it := range loc.VisibleItems() {
		locItems = append(locItems, it.Name())
	}
	return worldState{
		Inventory:     p.InventoryNames(),
		LocationItems: locItems,
		WallContents:  loc.FindScenery("wall").Container().Contents(),
		ChestContents: loc.FindScenery("chest").Container().Contents(),
		BoxContents:   loc.FindScenery("box").Container().Contents(),
		InWall:        loc.IsItemInContainer("ladder"),
		InChest:       loc.IsItemInContainer("coin"),
	}
}

func TestPutProtocolAtomicity(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		prep      string
		container string
		wantErr   error
	}{
		{"item not present", "ghost", "on", "wall", world.ErrItemNotPresent},
		{"container not found", "coin", "in", "ghostbox", world.ErrContainerNotFound},
		{"circular containment", "satchel", "in", "satchel", world.ErrCircularContainment},
		{"invalid preposition", "ladder", "in", "wall", world.ErrBadPreposition},
		{"disallowed item", "coin", "on", "wall", world.ErrItemNotAllowed},
		{"closed container", "coin", "in", "box", world.ErrContainerClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, loc := putFixture()
			before := captureState(p, loc)

			err := putItem(p, tt.item, tt.prep, tt.container)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("putItem = %v, want %v", err, tt.wantErr)
			}

			after := captureState(p, loc)
			if !reflect.DeepEqual(before, after) {
				t.Errorf("state changed on failed put:\nbefore %+v\nafter  %+v", before, after)
			}
		})
	}
}

func TestPutProtocolFullContainer(t *testing.T) {
	p, loc := putFixture()

	if err := putItem(p, "coin", "in", "chest"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	p.AddItem(world.NewItem("ring"))
	before := captureState(p, loc)

	err := putItem(p, "ring", "in", "chest")
	if !errors.Is(err, world.ErrContainerFull) {
		t.Fatalf("putItem into full chest = %v, want ErrContainerFull", err)
	}
	if !reflect.DeepEqual(before, captureState(p, loc)) {
		t.Error("state changed on failed put into full container")
	}

	// A removal frees the slot.
	chest := loc.FindScenery("chest").Container()
	if chest.CurrentCount() != 1 {
		t.Fatalf("chest count = %d, want 1", chest.CurrentCount())
	}
	loc.RemoveItem("coin")
	if err := putItem(p, "ring", "in", "chest"); err != nil {
		t.Fatalf("insert after removal failed: %v", err)
	}
}

func TestPutLocationStyleSemantics(t *testing.T) {
	// Scenario: "put ladder on wall" with a wall accepting only the
	// ladder via "on". The ladder leaves the inventory but remains a
	// real, tracked item at the location.
	p, loc := putFixture()

	if err := putItem(p, "ladder", "on", "wall"); err != nil {
		t.Fatalf("putItem = %v", err)
	}
	if p.Carries("ladder") {
		t.Error("ladder still in inventory")
	}
	if loc.FindVisibleItem("ladder") == nil {
		t.Error("ladder absent from location item list")
	}
	if !loc.IsItemInContainer("ladder") {
		t.Error("IsItemInContainer(ladder) = false")
	}
	if !loc.FindScenery("wall").Container().ContainsItem("ladder") {
		t.Error("wall container does not contain ladder")
	}
}

func TestPutInventoryStyleSemantics(t *testing.T) {
	// A carried container keeps the item with the player: membership is
	// recorded and the item stays in the inventory.
	p, loc := putFixture()

	if err := putItem(p, "coin", "in", "satchel"); err != nil {
		t.Fatalf("putItem = %v", err)
	}
	if !p.Carries("coin") {
		t.Error("coin left the inventory")
	}
	satchel := p.FindItem("satchel")
	if !satchel.Container().ContainsItem("coin") {
		t.Error("satchel does not contain coin")
	}
	if c, ok := p.ContainerOf("coin"); !ok || c != satchel.Container() {
		t.Error("inventory containment relation not recorded")
	}
	if loc.IsItemInContainer("coin") {
		t.Error("location containment polluted by inventory-style put")
	}
}

func TestPutMovesItemBetweenContainers(t *testing.T) {
	// Re-placing an item deregisters the prior relation first.
	p, loc := putFixture()

	if err := putItem(p, "coin", "in", "satchel"); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := putItem(p, "coin", "in", "chest"); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	satchel := p.FindItem("satchel")
	if satchel.Container().ContainsItem("coin") {
		t.Error("coin still recorded in satchel")
	}
	if !loc.FindScenery("chest").Container().ContainsItem("coin") {
		t.Error("coin not recorded in chest")
	}
	if c, ok := loc.ContainerOf("coin"); !ok || c != loc.FindScenery("chest").Container() {
		t.Error("location relation not updated")
	}
	if _, ok := p.ContainerOf("coin"); ok {
		t.Error("stale inventory relation survived")
	}
}
