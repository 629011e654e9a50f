package world

// Visibility is the lifecycle tag of an item at a location.
type Visibility string

const (
	// VisibilityNormal items appear in the location's visible collection.
	VisibilityNormal Visibility = "normal"
	// VisibilityHidden items are known to the location but not visible
	// and cannot be taken.
	VisibilityHidden Visibility = "hidden"
	// VisibilityRevealed items are visible and carry an active location
	// description override until taken.
	VisibilityRevealed Visibility = "revealed"
)

// Item is a takeable world object. An item may also carry a Container
// capability, letting it hold other items.
type Item struct {
	name    string
	aliases []string

	// InventoryDescription is shown in inventory listings.
	InventoryDescription string
	// LocationDescription is shown when the item lies at a location.
	LocationDescription string
	// Detail is shown when the item is examined.
	Detail string
	// RevealDescription overrides the location's description while the
	// item is revealed but not yet taken.
	RevealDescription string

	visibility Visibility
	initial    Visibility
	container  *Container
}

// NewItem creates a visible item with the given name and aliases.
func NewItem(name string, aliases ...string) *Item {
	return &Item{
		name:       name,
		aliases:    aliases,
		visibility: VisibilityNormal,
		initial:    VisibilityNormal,
	}
}

func (i *Item) Name() string      { return i.name }
func (i *Item) Aliases() []string { return i.aliases }

// Matches reports whether name addresses this item, by name or alias.
func (i *Item) Matches(name string) bool {
	return matchesName(name, i.name, i.aliases)
}

// SetHidden marks the item's configured state as hidden. Called during
// world construction only.
func (i *Item) SetHidden() {
	i.visibility = VisibilityHidden
	i.initial = VisibilityHidden
}

// Visibility returns the item's current lifecycle tag.
func (i *Item) Visibility() Visibility { return i.visibility }

// SetContainer attaches a container capability to the item.
func (i *Item) SetContainer(c *Container) { i.container = c }

// Container returns the item's container capability, or nil.
func (i *Item) Container() *Container { return i.container }

// reveal moves a hidden item to the revealed state. Reports whether the
// item was hidden.
func (i *Item) reveal() bool {
	if i.visibility != VisibilityHidden {
		return false
	}
	i.visibility = VisibilityRevealed
	return true
}

// clearReveal ends the revealed state, resuming the normal description.
func (i *Item) clearReveal() {
	if i.visibility == VisibilityRevealed {
		i.visibility = VisibilityNormal
	}
}

// resetVisibility returns the item to its originally configured state.
func (i *Item) resetVisibility() {
	i.visibility = i.initial
}
