package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &WorldValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World file is valid!")
}

type WorldValidator struct {
	errors []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("world file must have .yaml or .yml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !isValidWorldFilename(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_world.yaml, not my-world.yaml or MyWorld.yaml)", baseName)
	}

	// Strict decode: unknown fields are rejected by LoadDefinition.
	d, err := world.LoadDefinition(filename)
	if err != nil {
		return err
	}

	v.errors = nil
	v.validateDefinition(d)

	if err := d.Validate(); err != nil {
		if len(v.errors) > 0 {
			return fmt.Errorf("%w\n%s", err, strings.Join(v.errors, "\n"))
		}
		return err
	}
	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	// Building exercises the wiring the engine will run against.
	if _, err := world.Build(d); err != nil {
		return fmt.Errorf("failed to build world from %s: %w", filename, err)
	}
	return nil
}

func (v *WorldValidator) validateDefinition(d *world.Definition) {
	v.validateIDFormat("start location", d.Start)

	declared := make(map[string]bool)
	for key, loc := range d.Locations {
		v.validateIDFormat("location key", key)
		for _, it := range loc.Items {
			declared[strings.ToLower(it.Name)] = true
		}
	}

	for key, loc := range d.Locations {
		for _, it := range loc.Items {
			if it.Container != nil {
				v.validateContainer("item", it.Name, key, it.Container, declared)
			}
		}
		for _, s := range loc.Scenery {
			if s.Container != nil {
				v.validateContainer("scenery", s.Name, key, s.Container, declared)
			}
		}
		if loc.Lock != nil && loc.Lock.RequiredItem != "" && !declared[strings.ToLower(loc.Lock.RequiredItem)] {
			v.addError(fmt.Sprintf("lock %q at %q requires item %q, which no location declares", loc.Lock.Name, key, loc.Lock.RequiredItem))
		}
	}
}

func (v *WorldValidator) validateContainer(kind, name, locKey string, c *world.ContainerDef, declared map[string]bool) {
	if c.Capacity < 0 {
		v.addError(fmt.Sprintf("%s %q at %q has negative capacity", kind, name, locKey))
	}
	for _, allowed := range c.Allowed {
		if !declared[strings.ToLower(allowed)] {
			v.addError(fmt.Sprintf("%s %q at %q allows item %q, which no location declares", kind, name, locKey, allowed))
		}
	}
}

func (v *WorldValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}
	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidWorldFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
