package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("hazard", newHazard)
}

// hazard kills the player on contact while active. A hazard with no bit is
// static and always deadly; a bit-bound hazard follows its bit like any
// other gated object.
type hazard struct {
	gated
	bounds core.Rect
	static bool
}

func newHazard(def level.ObjectDef, env Env) (Object, error) {
	h := &hazard{
		bounds: core.NewRect(def.Pos.X, def.Pos.Y, def.Width, def.Height),
		static: def.Bit < 0,
	}
	if !h.static {
		h.gated = gated{bit: def.Bit, inverted: def.Inverted}
		if err := h.attach(env.Store); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *hazard) Kind() string      { return "hazard" }
func (h *hazard) Bounds() core.Rect { return h.bounds }

func (h *hazard) DeadlyNow() bool {
	return h.static || h.Active()
}

func (h *hazard) Draw(dst *core.Screen) {
	if !h.DeadlyNow() {
		return
	}
	color := core.ColorRed
	if !h.static {
		color = core.BitColor(h.bit)
	}
	for y := h.bounds.Y; y < h.bounds.Bottom(); y++ {
		for x := h.bounds.X; x < h.bounds.Right(); x++ {
			dst.SetColored(x, y, '^', color)
		}
	}
}

func (h *hazard) Teardown() {
	if !h.static {
		h.detach()
	}
}
