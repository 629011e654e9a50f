package world

// World is the pre-built, read-mostly graph of locations, items, scenery
// and connections, assembled once before any session begins. The only
// runtime-mutable shared state is per-location item, containment and
// hidden-item bookkeeping.
type World struct {
	name      string
	intro     string
	start     *Location
	locations map[string]*Location
	hints     []string
}

// Name returns the world's display name.
func (w *World) Name() string { return w.name }

// Intro returns the configured intro prompt shown before play starts.
func (w *World) Intro() string { return w.intro }

// Start returns the starting location.
func (w *World) Start() *Location { return w.start }

// Location returns the location with the given key.
func (w *World) Location(key string) (*Location, bool) {
	l, ok := w.locations[key]
	return l, ok
}

// Hints returns the keyed hint progression, in phase order.
func (w *World) Hints() []string { return w.hints }

// FindItem searches every location for an item matching name and returns
// the item and the location holding it. Used when rebuilding a session
// from a snapshot.
func (w *World) FindItem(name string) (*Item, *Location) {
	for _, loc := range w.locations {
		for _, it := range loc.items {
			if it.Matches(name) {
				return it, loc
			}
		}
	}
	return nil, nil
}

// RevealedItems returns the names of revealed items per location key,
// omitting locations with none. Used when persisting a session, so a
// reveal survives a rebuild of the world.
func (w *World) RevealedItems() map[string][]string {
	out := make(map[string][]string)
	for key, loc := range w.locations {
		if names := loc.RevealedItemNames(); len(names) > 0 {
			out[key] = names
		}
	}
	return out
}

// Reset returns every location to its initial configuration.
func (w *World) Reset() {
	for _, loc := range w.locations {
		loc.Reset()
	}
}
