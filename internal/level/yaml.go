package level

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mkovalev/bitgate/internal/core"
)

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	MaskBits int          `yaml:"mask_bits"`
	Rows     []string     `yaml:"rows"`
	Objects  []yamlObject `yaml:"objects"`
}

type yamlObject struct {
	Kind   string    `yaml:"kind"`
	Bit    *int      `yaml:"bit,omitempty"`
	Pos    yamlPoint `yaml:"pos"`
	Target yamlPoint `yaml:"target,omitempty"`
	Width    int  `yaml:"width,omitempty"`
	Height   int  `yaml:"height,omitempty"`
	Inverted bool `yaml:"inverted,omitempty"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a single YAML level file. The tile grid is drawn as rows
// of characters: '#' is a solid tile, anything else is empty space.
func ParseYAML(data []byte) (*Def, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	if len(yl.Rows) == 0 {
		return nil, fmt.Errorf("level %s: no rows", yl.ID)
	}

	height := len(yl.Rows)
	width := 0
	for _, row := range yl.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	solid := make([][]bool, height)
	for y, row := range yl.Rows {
		solid[y] = make([]bool, width)
		for x, ch := range row {
			solid[y][x] = ch == '#'
		}
	}

	def := &Def{
		ID:       yl.ID,
		Name:     yl.Name,
		MaskBits: yl.MaskBits,
		Width:    width,
		Height:   height,
		solid:    solid,
	}

	for _, obj := range yl.Objects {
		bit := -1
		if obj.Bit != nil {
			bit = *obj.Bit
		}
		w := obj.Width
		if w <= 0 {
			w = 1
		}
		h := obj.Height
		if h <= 0 {
			h = 1
		}
		def.Objects = append(def.Objects, ObjectDef{
			Kind:     obj.Kind,
			Bit:      bit,
			Pos:      core.Pt(obj.Pos.X, obj.Pos.Y),
			Target:   core.Pt(obj.Target.X, obj.Target.Y),
			Width:    w,
			Height:   h,
			Inverted: obj.Inverted,
		})
	}

	if err := def.validate(); err != nil {
		return nil, err
	}
	return def, nil
}
