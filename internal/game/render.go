package game

import (
	"fmt"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/session"
)

const (
	TileChar   = '#'
	hudRows    = 2
	borderRows = 1
)

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to at least 44x18")
		return
	}

	switch g.machine.State() {
	case session.GameOver:
		g.renderEnd(dst)
		return
	case session.MenuIdle:
		dst.DrawTextCentered(dst.Height()/2, "Press Enter to start")
		return
	}

	g.renderHUD(dst)
	g.renderWorld(dst)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	def := g.graph().Def()

	dst.DrawText(1, 0, fmt.Sprintf("Level %d/%d  %s", g.machine.LevelIndex()+1, len(g.levels), def.Name))
	dst.DrawText(1, 1, fmt.Sprintf("Lives %d  Deaths %d", g.lives, g.deaths))

	// mask readout, most significant bit on the left
	x := dst.Width() - 2 - g.store.Width()*2
	dst.DrawText(x-5, 1, "mask")
	for i := g.store.Width() - 1; i >= 0; i-- {
		set, _ := g.store.GetBit(i)
		glyph := '0'
		if set {
			glyph = '1'
		}
		dst.SetColored(x, 1, glyph, core.BitColor(i))
		x += 2
	}
}

// renderWorld blits the level grid, objects, and player, centered under the
// HUD.
func (g *Game) renderWorld(dst *core.Screen) {
	gr := g.graph()
	def := gr.Def()

	world := core.NewScreen(def.Width, def.Height)
	for y := 0; y < def.Height; y++ {
		for x := 0; x < def.Width; x++ {
			if def.SolidAt(x, y) {
				world.SetColored(x, y, TileChar, core.ColorGray)
			}
		}
	}
	for _, obj := range gr.Objects() {
		obj.Draw(world)
	}
	cell := g.player.Cell()
	world.SetColored(cell.X, cell.Y, PlayerChar, core.ColorBrightWhite)

	offX := core.Max(0, (dst.Width()-def.Width)/2)
	offY := hudRows + borderRows
	dst.DrawBox(core.NewRect(offX-1, offY-1, def.Width+2, def.Height+2))
	for y := 0; y < def.Height; y++ {
		for x := 0; x < def.Width; x++ {
			c := world.GetCell(x, y)
			if c.Rune != ' ' && c.Rune != 0 {
				dst.SetCell(offX+x, offY+y, c)
			}
		}
	}
}

func (g *Game) renderEnd(dst *core.Screen) {
	mid := dst.Height() / 2
	if g.won {
		dst.DrawTextCentered(mid-1, "CAMPAIGN COMPLETE")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Deaths: %d", g.deaths))
	} else {
		dst.DrawTextCentered(mid-1, "GAME OVER")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Reached level %d", g.machine.LevelIndex()+1))
	}
	dst.DrawTextCentered(mid+3, "Press R to restart, Q to quit")
}
