package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("spawn", newSpawn)
}

// spawn marks the level's initial respawn point. Construction establishes
// the point with the tracker, which also becomes the active respawn until a
// checkpoint overrides it.
type spawn struct {
	pos core.Point
}

func newSpawn(def level.ObjectDef, env Env) (Object, error) {
	env.Tracker.EstablishInitial(def.Pos)
	return &spawn{pos: def.Pos}, nil
}

func (s *spawn) Kind() string      { return "spawn" }
func (s *spawn) Bounds() core.Rect { return core.NewRect(s.pos.X, s.pos.Y, 1, 1) }

func (s *spawn) Draw(dst *core.Screen) {
	dst.SetColored(s.pos.X, s.pos.Y, '*', core.ColorGray)
}

func (s *spawn) Teardown() {}
