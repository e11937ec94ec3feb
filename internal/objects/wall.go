package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("wall", newWall)
}

// wall is a vertical barrier gated by one bit. Combined with the inverted
// flag it doubles as a door that opens when the bit is set.
type wall struct {
	gated
	bounds core.Rect
}

func newWall(def level.ObjectDef, env Env) (Object, error) {
	w := &wall{
		gated:  gated{bit: def.Bit, inverted: def.Inverted},
		bounds: core.NewRect(def.Pos.X, def.Pos.Y, def.Width, def.Height),
	}
	if err := w.attach(env.Store); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *wall) Kind() string      { return "wall" }
func (w *wall) Bounds() core.Rect { return w.bounds }
func (w *wall) SolidNow() bool    { return w.Active() }

func (w *wall) Draw(dst *core.Screen) {
	color := core.BitColor(w.bit)
	glyph := '|'
	if !w.Active() {
		glyph = ':'
	}
	for y := w.bounds.Y; y < w.bounds.Bottom(); y++ {
		for x := w.bounds.X; x < w.bounds.Right(); x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (w *wall) Teardown() { w.detach() }
