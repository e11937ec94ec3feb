package game

import "github.com/mkovalev/bitgate/internal/core"

// Snapshot contains the complete simulation state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       int
	LevelIndex int
	State      string

	PlayerX  int
	PlayerY  int
	PlayerVY int
	OnGround bool

	Mask     uint16
	MaskBits int

	Lives       int
	Deaths      int
	LevelDeaths int
	Won         bool
	Paused      bool

	RespawnX int
	RespawnY int
}

// Snapshot returns the current simulation state. Two games stepped with the
// same level set, config, and input sequence produce identical snapshots.
func (g *Game) Snapshot() Snapshot {
	var respawn core.Point
	if g.tracker.Established() {
		respawn = g.tracker.ActivePosition()
	}
	return Snapshot{
		Tick:        g.tickCount,
		LevelIndex:  g.machine.LevelIndex(),
		State:       g.machine.State().String(),
		PlayerX:     int(g.player.X),
		PlayerY:     int(g.player.Y),
		PlayerVY:    int(g.player.VY),
		OnGround:    g.player.OnGround,
		Mask:        g.store.Value(),
		MaskBits:    g.store.Width(),
		Lives:       g.lives,
		Deaths:      g.deaths,
		LevelDeaths: g.levelDeaths,
		Won:         g.won,
		Paused:      g.paused,
		RespawnX:    respawn.X,
		RespawnY:    respawn.Y,
	}
}
