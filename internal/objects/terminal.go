package objects

import (
	"github.com/charmbracelet/log"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("terminal", newTerminal)
}

// terminal is the player-facing mask interface: using it toggles its bit.
// It also listens to its own bit so its glyph reflects the live value even
// when the bit is flipped elsewhere.
type terminal struct {
	gated
	pos    core.Point
	logger *log.Logger
}

func newTerminal(def level.ObjectDef, env Env) (Object, error) {
	t := &terminal{
		gated:  gated{bit: def.Bit},
		pos:    def.Pos,
		logger: env.Logger,
	}
	if err := t.attach(env.Store); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *terminal) Kind() string      { return "terminal" }
func (t *terminal) Bounds() core.Rect { return core.NewRect(t.pos.X, t.pos.Y, 1, 1) }

// Use flips the terminal's bit. Notifications for the flip run before this
// returns, so gated objects have settled by the time the caller resumes.
func (t *terminal) Use() {
	if err := t.store.ToggleBit(t.bit); err != nil {
		t.logger.Error("terminal: toggle failed", "bit", t.bit, "err", err)
	}
}

func (t *terminal) Draw(dst *core.Screen) {
	glyph := '0'
	if t.enabled {
		glyph = '1'
	}
	dst.SetColored(t.pos.X, t.pos.Y, glyph, core.BitColor(t.bit))
}

func (t *terminal) Teardown() { t.detach() }
