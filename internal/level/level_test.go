package level

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
id: "test-level"
name: "Test Level"
mask_bits: 4
rows:
  - "          "
  - "   ##     "
  - "##########"
objects:
  - kind: spawn
    pos: {x: 1, y: 1}
  - kind: hazard
    bit: 0
    inverted: true
    pos: {x: 5, y: 1}
    width: 2
  - kind: teleporter
    bit: 3
    pos: {x: 7, y: 1}
    target: {x: 2, y: 0}
  - kind: exit
    pos: {x: 9, y: 1}
`

func TestParseYAML(t *testing.T) {
	def, err := ParseYAML([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if def.ID != "test-level" || def.Name != "Test Level" {
		t.Errorf("id/name = %q/%q", def.ID, def.Name)
	}
	if def.MaskBits != 4 {
		t.Errorf("MaskBits = %d, expected 4", def.MaskBits)
	}
	if def.Width != 10 || def.Height != 3 {
		t.Errorf("size = %dx%d, expected 10x3", def.Width, def.Height)
	}
	if len(def.Objects) != 4 {
		t.Fatalf("objects = %d, expected 4", len(def.Objects))
	}

	hazard := def.Objects[1]
	if hazard.Kind != "hazard" || hazard.Bit != 0 || !hazard.Inverted || hazard.Width != 2 {
		t.Errorf("hazard = %+v", hazard)
	}

	// Ungated kinds default to bit -1
	if def.Objects[0].Bit != -1 {
		t.Errorf("spawn bit = %d, expected -1", def.Objects[0].Bit)
	}

	tele := def.Objects[2]
	if tele.Target.X != 2 || tele.Target.Y != 0 {
		t.Errorf("teleporter target = %+v", tele.Target)
	}
}

func TestSolidAt(t *testing.T) {
	def, err := ParseYAML([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if !def.SolidAt(3, 1) || !def.SolidAt(4, 1) {
		t.Error("platform tiles should be solid")
	}
	if def.SolidAt(0, 0) {
		t.Error("empty tile should not be solid")
	}
	if !def.SolidAt(0, 2) {
		t.Error("floor should be solid")
	}

	// Outside the grid counts as solid
	if !def.SolidAt(-1, 0) || !def.SolidAt(10, 0) || !def.SolidAt(0, 3) || !def.SolidAt(0, -1) {
		t.Error("out-of-grid cells should be solid")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing id",
			yaml: "name: x\nmask_bits: 2\nrows: [\"##\"]\nobjects: [{kind: spawn, pos: {x: 0, y: 0}}]",
		},
		{
			name: "no rows",
			yaml: "id: x\nmask_bits: 2\nobjects: []",
		},
		{
			name: "mask bits too large",
			yaml: "id: x\nmask_bits: 17\nrows: [\"##\"]\nobjects: [{kind: spawn, pos: {x: 0, y: 0}}]",
		},
		{
			name: "bit beyond width",
			yaml: "id: x\nmask_bits: 2\nrows: [\"##\"]\nobjects: [{kind: spawn, pos: {x: 0, y: 0}}, {kind: hazard, bit: 2, pos: {x: 1, y: 0}}]",
		},
		{
			name: "no spawn",
			yaml: "id: x\nmask_bits: 2\nrows: [\"##\"]\nobjects: []",
		},
		{
			name: "object outside grid",
			yaml: "id: x\nmask_bits: 2\nrows: [\"##\"]\nobjects: [{kind: spawn, pos: {x: 5, y: 0}}]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.yaml)); err == nil {
				t.Error("expected a parse/validation error")
			}
		})
	}
}

func TestLoaderSortsByID(t *testing.T) {
	dir := t.TempDir()

	a := "id: \"b-second\"\nmask_bits: 1\nrows: [\"###\"]\nobjects: [{kind: spawn, pos: {x: 0, y: 0}}]"
	b := "id: \"a-first\"\nmask_bits: 1\nrows: [\"###\"]\nobjects: [{kind: spawn, pos: {x: 0, y: 0}}]"
	if err := os.WriteFile(filepath.Join(dir, "one.yaml"), []byte(a), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "two.yaml"), []byte(b), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-YAML and invalid files are skipped
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a level"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(":::"), 0o644); err != nil {
		t.Fatal(err)
	}

	defs, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("loaded %d levels, expected 2", len(defs))
	}
	if defs[0].ID != "a-first" || defs[1].ID != "b-second" {
		t.Errorf("order = %s, %s", defs[0].ID, defs[1].ID)
	}
}

func TestCampaignParses(t *testing.T) {
	defs, err := Campaign()
	if err != nil {
		t.Fatalf("Campaign() failed: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("campaign should contain at least one level")
	}

	for _, def := range defs {
		if def.Name == "" {
			t.Errorf("level %s has no name", def.ID)
		}
		spawns, exits := 0, 0
		for _, obj := range def.Objects {
			switch obj.Kind {
			case "spawn":
				spawns++
			case "exit":
				exits++
			}
		}
		if spawns != 1 {
			t.Errorf("level %s has %d spawns", def.ID, spawns)
		}
		if exits == 0 {
			t.Errorf("level %s has no exit", def.ID)
		}
	}
}
