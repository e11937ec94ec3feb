package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
	"github.com/mkovalev/bitgate/internal/respawn"
)

func init() {
	Register("checkpoint", newCheckpoint)
}

// checkpoint moves the active respawn point when the player touches it.
// Activation is one-shot per level life cycle; re-touching an already
// activated checkpoint does nothing.
type checkpoint struct {
	pos       core.Point
	tracker   *respawn.Tracker
	activated bool
}

func newCheckpoint(def level.ObjectDef, env Env) (Object, error) {
	return &checkpoint{pos: def.Pos, tracker: env.Tracker}, nil
}

func (c *checkpoint) Kind() string      { return "checkpoint" }
func (c *checkpoint) Bounds() core.Rect { return core.NewRect(c.pos.X, c.pos.Y, 1, 1) }

// Activate registers this checkpoint as the respawn point.
func (c *checkpoint) Activate() {
	if c.activated {
		return
	}
	c.activated = true
	c.tracker.ActivateCheckpoint(c.pos)
}

// OnPlayerTouch implements Trigger.
func (c *checkpoint) OnPlayerTouch() { c.Activate() }

// Activated reports whether the checkpoint has been touched.
func (c *checkpoint) Activated() bool { return c.activated }

func (c *checkpoint) Draw(dst *core.Screen) {
	glyph := 'c'
	color := core.ColorGray
	if c.activated {
		glyph = 'C'
		color = core.ColorGreen
	}
	dst.SetColored(c.pos.X, c.pos.Y, glyph, color)
}

func (c *checkpoint) Teardown() {}
