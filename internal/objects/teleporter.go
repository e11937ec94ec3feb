package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("teleporter", newTeleporter)
}

// teleporter relocates the player to its target cell on contact, but only
// while its bit is active.
type teleporter struct {
	gated
	pos    core.Point
	target core.Point
}

func newTeleporter(def level.ObjectDef, env Env) (Object, error) {
	t := &teleporter{
		gated:  gated{bit: def.Bit, inverted: def.Inverted},
		pos:    def.Pos,
		target: def.Target,
	}
	if err := t.attach(env.Store); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *teleporter) Kind() string      { return "teleporter" }
func (t *teleporter) Bounds() core.Rect { return core.NewRect(t.pos.X, t.pos.Y, 1, 1) }

func (t *teleporter) PortalNow() (core.Point, bool) {
	return t.target, t.Active()
}

func (t *teleporter) Draw(dst *core.Screen) {
	glyph := 'O'
	if !t.Active() {
		glyph = 'o'
	}
	dst.SetColored(t.pos.X, t.pos.Y, glyph, core.BitColor(t.bit))
}

func (t *teleporter) Teardown() { t.detach() }
