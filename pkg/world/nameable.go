// Package world holds the containment model: items, scenery, locations,
// players, the container capability and the openable capability. All
// mutable shared state of a running game lives here.
package world

import "strings"

// Nameable is implemented by anything a player can address by name:
// items, scenery and openable targets. The resolver consumes it uniformly.
type Nameable interface {
	Name() string
	Aliases() []string
	Matches(name string) bool
}

// matchesName reports whether name matches the canonical name or any alias,
// case-insensitively.
func matchesName(name, canonical string, aliases []string) bool {
	if strings.EqualFold(name, canonical) {
		return true
	}
	for _, a := range aliases {
		if strings.EqualFold(name, a) {
			return true
		}
	}
	return false
}
