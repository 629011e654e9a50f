package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testWorldYAML = `name: Test Manor
intro: "Welcome to Test Manor. Ready to play?"
start: key_room
locations:
  key_room:
    description: "A small room with a table."
    exits:
      north: vault_room
    items:
      - name: key
        aliases: [brass key]
        detail: "A small brass key."
    scenery:
      - name: wall
        description: "A high brick wall."
        container:
          allowed: [ladder]
          prepositions: [on]
  vault_room:
    description: "The vault gleams."
    exits:
      south: key_room
    lock:
      name: door
      aliases: [vault door]
      required_item: key
      unlock_message: "The door swings open."
      fail_message: "The door is locked."
hints:
  - "Try looking around."
  - "The key opens the vault."
`

func writeTestWorld(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test world: %v", err)
	}
	return path
}

func TestLoadAndBuildDefinition(t *testing.T) {
	path := writeTestWorld(t, testWorldYAML)

	def, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("LoadDefinition failed: %v", err)
	}

	w, err := Build(def)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if w.Name() != "Test Manor" {
		t.Errorf("Name() = %q", w.Name())
	}
	if w.Start() == nil || w.Start().Key() != "key_room" {
		t.Fatal("start location not wired")
	}

	vault, ok := w.Start().ExitTo("north")
	if !ok || vault.Key() != "vault_room" {
		t.Fatal("north exit not wired")
	}
	if back, ok := vault.ExitTo("south"); !ok || back != w.Start() {
		t.Fatal("south exit not wired back")
	}

	if w.Start().FindVisibleItem("brass key") == nil {
		t.Error("item alias not wired")
	}
	wall := w.Start().FindScenery("wall")
	if wall == nil || wall.Container() == nil {
		t.Fatal("scenery container not wired")
	}
	if wall.Container().Placement() != PlacementLocation {
		t.Error("scenery container should be location-style")
	}
	if wall.Container().AcceptsPreposition("in") {
		t.Error("wall container should only accept 'on'")
	}

	lock := vault.Lock()
	if lock == nil || !lock.Matches("vault door") {
		t.Fatal("lock not wired")
	}
	if !lock.IsLocked() {
		t.Error("lock should start locked")
	}

	if len(w.Hints()) != 2 {
		t.Errorf("Hints() has %d entries, want 2", len(w.Hints()))
	}
}

func TestLoadDefinitionRejectsUnknownFields(t *testing.T) {
	path := writeTestWorld(t, "name: X\nstart: a\nbogus_field: true\nlocations:\n  a:\n    description: d\n")
	if _, err := LoadDefinition(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Definition)
		wantErr string
	}{
		{
			name:    "missing start",
			mutate:  func(d *Definition) { d.Start = "" },
			wantErr: "start location is required",
		},
		{
			name:    "undeclared start",
			mutate:  func(d *Definition) { d.Start = "nowhere" },
			wantErr: "is not declared",
		},
		{
			name: "bad exit direction",
			mutate: func(d *Definition) {
				loc := d.Locations["key_room"]
				loc.Exits = map[string]string{"sideways": "vault_room"}
				d.Locations["key_room"] = loc
			},
			wantErr: "not a direction word",
		},
		{
			name: "dangling exit target",
			mutate: func(d *Definition) {
				loc := d.Locations["key_room"]
				loc.Exits = map[string]string{"north": "nowhere"}
				d.Locations["key_room"] = loc
			},
			wantErr: "undeclared location",
		},
		{
			name: "hidden item without reveal text",
			mutate: func(d *Definition) {
				loc := d.Locations["key_room"]
				loc.Items = []ItemDef{{Name: "gem", Hidden: true}}
				d.Locations["key_room"] = loc
			},
			wantErr: "no reveal_description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestWorld(t, testWorldYAML)
			def, err := LoadDefinition(path)
			if err != nil {
				t.Fatalf("LoadDefinition failed: %v", err)
			}
			tt.mutate(def)
			err = def.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
