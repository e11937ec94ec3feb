package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("exit", newExit)
}

// exit completes the level on contact. Always active.
type exit struct {
	pos core.Point
}

func newExit(def level.ObjectDef, env Env) (Object, error) {
	return &exit{pos: def.Pos}, nil
}

func (e *exit) Kind() string      { return "exit" }
func (e *exit) Bounds() core.Rect { return core.NewRect(e.pos.X, e.pos.Y, 1, 1) }
func (e *exit) GoalNow() bool     { return true }

func (e *exit) Draw(dst *core.Screen) {
	dst.SetColored(e.pos.X, e.pos.Y, 'X', core.ColorBrightWhite)
}

func (e *exit) Teardown() {}
