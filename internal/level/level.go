// Package level defines the YAML level format and its loader. A level is a
// static tile grid plus a list of object declarations; the object kinds
// themselves live in the objects package, which depends on this one.
package level

import (
	"fmt"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/mask"
)

// Def is a parsed level definition, ready to be instantiated.
type Def struct {
	ID       string
	Name     string
	MaskBits int
	Width    int
	Height   int
	solid    [][]bool
	Objects  []ObjectDef
}

// ObjectDef declares one world object to be created when the level loads.
// Which fields matter depends on the kind; Bit is -1 for ungated kinds.
type ObjectDef struct {
	Kind     string
	Bit      int
	Pos      core.Point
	Target   core.Point // teleporter destination
	Width    int        // horizontal extent, default 1
	Height   int        // vertical extent, default 1
	Inverted bool       // active when the bit is clear instead of set
}

// SolidAt reports whether the static tile at (x, y) is solid. Cells outside
// the grid count as solid so the player cannot leave the level sideways.
func (d *Def) SolidAt(x, y int) bool {
	if x < 0 || x >= d.Width || y < 0 {
		return true
	}
	if y >= d.Height {
		return true
	}
	return d.solid[y][x]
}

// validate checks the structural invariants of a parsed definition.
func (d *Def) validate() error {
	if d.ID == "" {
		return fmt.Errorf("level: missing id")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("level %s: non-positive size %dx%d", d.ID, d.Width, d.Height)
	}
	if d.MaskBits < mask.MinBits || d.MaskBits > mask.MaxBits {
		return fmt.Errorf("level %s: mask_bits %d outside [%d, %d]", d.ID, d.MaskBits, mask.MinBits, mask.MaxBits)
	}

	spawns := 0
	for i, obj := range d.Objects {
		if obj.Kind == "" {
			return fmt.Errorf("level %s: object %d has no kind", d.ID, i)
		}
		if obj.Kind == "spawn" {
			spawns++
		}
		if obj.Bit >= d.MaskBits {
			return fmt.Errorf("level %s: object %d (%s) uses bit %d, mask_bits is %d", d.ID, i, obj.Kind, obj.Bit, d.MaskBits)
		}
		if obj.Pos.X < 0 || obj.Pos.X >= d.Width || obj.Pos.Y < 0 || obj.Pos.Y >= d.Height {
			return fmt.Errorf("level %s: object %d (%s) at %v is outside the grid", d.ID, i, obj.Kind, obj.Pos)
		}
	}
	if spawns != 1 {
		return fmt.Errorf("level %s: expected exactly one spawn object, found %d", d.ID, spawns)
	}
	return nil
}
