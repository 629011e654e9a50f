package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/adventure-engine/pkg/vocab"
)

// Definition is the declarative form of a world, loaded from YAML before
// any session begins.
type Definition struct {
	Name      string                 `yaml:"name"`
	Intro     string                 `yaml:"intro,omitempty"`
	Start     string                 `yaml:"start"`
	Locations map[string]LocationDef `yaml:"locations"`
	Hints     []string               `yaml:"hints,omitempty"`
}

// LocationDef declares one location.
type LocationDef struct {
	Name        string            `yaml:"name,omitempty"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits,omitempty"` // direction -> location key
	Items       []ItemDef         `yaml:"items,omitempty"`
	Scenery     []SceneryDef      `yaml:"scenery,omitempty"`
	Lock        *LockDef          `yaml:"lock,omitempty"`
}

// ItemDef declares one item.
type ItemDef struct {
	Name                 string        `yaml:"name"`
	Aliases              []string      `yaml:"aliases,omitempty"`
	InventoryDescription string        `yaml:"inventory_description,omitempty"`
	LocationDescription  string        `yaml:"location_description,omitempty"`
	Detail               string        `yaml:"detail,omitempty"`
	Hidden               bool          `yaml:"hidden,omitempty"`
	RevealDescription    string        `yaml:"reveal_description,omitempty"`
	Container            *ContainerDef `yaml:"container,omitempty"`
}

// SceneryDef declares one scenery object.
type SceneryDef struct {
	Name        string        `yaml:"name"`
	Aliases     []string      `yaml:"aliases,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Container   *ContainerDef `yaml:"container,omitempty"`
}

// ContainerDef declares a container capability.
type ContainerDef struct {
	Capacity     int      `yaml:"capacity,omitempty"`
	Allowed      []string `yaml:"allowed,omitempty"`
	Prepositions []string `yaml:"prepositions,omitempty"`
}

// LockDef declares an entry guard for a location.
type LockDef struct {
	Name          string   `yaml:"name"`
	Aliases       []string `yaml:"aliases,omitempty"`
	Code          string   `yaml:"code,omitempty"`
	RequiredItem  string   `yaml:"required_item,omitempty"`
	UnlockMessage string   `yaml:"unlock_message,omitempty"`
	OpenMessage   string   `yaml:"open_message,omitempty"`
	FailMessage   string   `yaml:"fail_message,omitempty"`
	Unlocked      bool     `yaml:"unlocked,omitempty"`
	Open          bool     `yaml:"open,omitempty"`
}

// LoadDefinition reads and strictly decodes a world definition file.
// Unknown fields are rejected.
func LoadDefinition(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open world definition: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var d Definition
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode world definition %s: %w", path, err)
	}
	return &d, nil
}

// Validate checks referential integrity of the definition: the start key
// exists, every exit direction is a known direction word, and every exit
// target is a declared location.
func (d *Definition) Validate() error {
	var errs []string
	addError := func(format string, args ...any) {
		errs = append(errs, "  - "+fmt.Sprintf(format, args...))
	}

	if d.Name == "" {
		addError("world name is required")
	}
	if d.Start == "" {
		addError("start location is required")
	} else if _, ok := d.Locations[d.Start]; !ok {
		addError("start location %q is not declared", d.Start)
	}
	if len(d.Locations) == 0 {
		addError("at least one location is required")
	}

	for key, loc := range d.Locations {
		if loc.Description == "" {
			addError("location %q has no description", key)
		}
		for dir, target := range loc.Exits {
			if _, ok := vocab.CanonicalDirection(dir); !ok {
				addError("location %q exit %q is not a direction word", key, dir)
			}
			if _, ok := d.Locations[target]; !ok {
				addError("location %q exit %q targets undeclared location %q", key, dir, target)
			}
		}
		for _, it := range loc.Items {
			if it.Name == "" {
				addError("location %q has an item without a name", key)
			}
			if it.Hidden && it.RevealDescription == "" {
				addError("hidden item %q at %q has no reveal_description", it.Name, key)
			}
		}
		for _, s := range loc.Scenery {
			if s.Name == "" {
				addError("location %q has scenery without a name", key)
			}
		}
		if loc.Lock != nil && loc.Lock.Name == "" {
			addError("location %q lock has no name", key)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid world definition:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}

// Build assembles the runtime world graph from a validated definition.
func Build(d *Definition) (*World, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		name:      d.Name,
		intro:     d.Intro,
		locations: make(map[string]*Location, len(d.Locations)),
		hints:     d.Hints,
	}

	for key, def := range d.Locations {
		name := def.Name
		if name == "" {
			name = key
		}
		loc := NewLocation(key, name, def.Description)

		for _, itemDef := range def.Items {
			it := NewItem(itemDef.Name, itemDef.Aliases...)
			it.InventoryDescription = itemDef.InventoryDescription
			it.LocationDescription = itemDef.LocationDescription
			it.Detail = itemDef.Detail
			it.RevealDescription = itemDef.RevealDescription
			if itemDef.Hidden {
				it.SetHidden()
			}
			if itemDef.Container != nil {
				it.SetContainer(buildContainer(itemDef.Container, PlacementInventory))
			}
			loc.PlaceItem(it)
		}

		for _, sceneryDef := range def.Scenery {
			s := NewScenery(sceneryDef.Name, sceneryDef.Description, sceneryDef.Aliases...)
			if sceneryDef.Container != nil {
				s.SetContainer(buildContainer(sceneryDef.Container, PlacementLocation))
			}
			loc.AddScenery(s)
		}

		if def.Lock != nil {
			lock := NewCodeLock(def.Lock.Name, def.Lock.Aliases...)
			lock.Code = def.Lock.Code
			lock.RequiredItem = def.Lock.RequiredItem
			lock.UnlockMessage = def.Lock.UnlockMessage
			lock.OpenMessage = def.Lock.OpenMessage
			lock.FailMessage = def.Lock.FailMessage
			lock.SetState(!def.Lock.Unlocked, def.Lock.Open)
			loc.SetLock(lock)
		}

		w.locations[key] = loc
	}

	// Second pass: wire exits once every location exists.
	for key, def := range d.Locations {
		loc := w.locations[key]
		for dir, target := range def.Exits {
			canonical, _ := vocab.CanonicalDirection(dir)
			loc.AddExit(canonical, w.locations[target])
		}
	}

	w.start = w.locations[d.Start]
	return w, nil
}

func buildContainer(def *ContainerDef, placement Placement) *Container {
	c := NewContainer(def.Capacity, placement)
	if len(def.Allowed) > 0 {
		c.AllowOnly(def.Allowed...)
	}
	if len(def.Prepositions) > 0 {
		c.SetPrepositions(def.Prepositions...)
	}
	return c
}
