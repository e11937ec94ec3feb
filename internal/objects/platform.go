package objects

import (
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
)

func init() {
	Register("platform", newPlatform)
}

// platform is a horizontal walkable surface that only exists while its bit
// is active. While inactive it neither blocks nor carries the player.
type platform struct {
	gated
	bounds core.Rect
}

func newPlatform(def level.ObjectDef, env Env) (Object, error) {
	p := &platform{
		gated:  gated{bit: def.Bit, inverted: def.Inverted},
		bounds: core.NewRect(def.Pos.X, def.Pos.Y, def.Width, def.Height),
	}
	if err := p.attach(env.Store); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *platform) Kind() string      { return "platform" }
func (p *platform) Bounds() core.Rect { return p.bounds }
func (p *platform) SolidNow() bool    { return p.Active() }

func (p *platform) Draw(dst *core.Screen) {
	color := core.BitColor(p.bit)
	glyph := '='
	if !p.Active() {
		glyph = '.'
	}
	for y := p.bounds.Y; y < p.bounds.Bottom(); y++ {
		for x := p.bounds.X; x < p.bounds.Right(); x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (p *platform) Teardown() { p.detach() }
