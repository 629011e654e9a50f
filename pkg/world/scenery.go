package world

// Scenery is a non-takeable world object attached to a location. It can
// respond to examination and optionally act as a location-style container.
type Scenery struct {
	name    string
	aliases []string

	// Description is shown when the scenery is examined.
	Description string

	container *Container
}

// NewScenery creates a scenery object.
func NewScenery(name, description string, aliases ...string) *Scenery {
	return &Scenery{
		name:        name,
		aliases:     aliases,
		Description: description,
	}
}

func (s *Scenery) Name() string      { return s.name }
func (s *Scenery) Aliases() []string { return s.aliases }

func (s *Scenery) Matches(name string) bool {
	return matchesName(name, s.name, s.aliases)
}

// SetContainer attaches a container capability to the scenery.
func (s *Scenery) SetContainer(c *Container) { s.container = c }

// Container returns the scenery's container capability, or nil.
func (s *Scenery) Container() *Container { return s.container }
