package game

import (
	"github.com/mkovalev/bitgate/internal/core"
)

const PlayerChar = '@'

// player is the single controllable entity. Position is in fixed-point
// units; the occupied cell is the rounded position.
type player struct {
	X, Y     Fixed
	VY       Fixed
	OnGround bool
	Coyote   int // remaining ticks the player may still jump after leaving ground
}

// Cell returns the grid cell the player currently occupies.
func (p *player) Cell() core.Point {
	return core.Pt(p.X.ToCellRounded(), p.Y.ToCellRounded())
}

// PlaceAt snaps the player to a cell with no velocity.
func (p *player) PlaceAt(pos core.Point) {
	p.X = ToFixed(pos.X)
	p.Y = ToFixed(pos.Y)
	p.VY = 0
	p.OnGround = false
	p.Coyote = 0
}
