// Package game implements the platformer simulation: a single player moving
// through bit-gated levels, wired to the mask store, the session machine,
// and the respawn tracker.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/mkovalev/bitgate/internal/config"
	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/level"
	"github.com/mkovalev/bitgate/internal/mask"
	"github.com/mkovalev/bitgate/internal/objects"
	"github.com/mkovalev/bitgate/internal/respawn"
	"github.com/mkovalev/bitgate/internal/session"
)

// RunRecord describes one finished level attempt, reported through the
// OnLevelFinished hook when the player exits a level or runs out of lives.
type RunRecord struct {
	LevelID   string
	Completed bool
	Deaths    int
	Ticks     int
}

// Game implements the platformer logic. It satisfies the platform layer's
// game contract: Reset, Step, Render, State.
type Game struct {
	cfg    config.GameConfig
	levels []*level.Def
	logger *log.Logger

	store   *mask.Store
	tracker *respawn.Tracker
	machine *session.Machine

	player player

	lives       int
	deaths      int // total for the run
	levelDeaths int
	levelTicks  int
	tickCount   int

	paused     bool
	won        bool
	startLevel int

	runtime        core.RuntimeConfig
	screenTooSmall bool

	finishedHooks []func(RunRecord)
}

// New creates a game over the given level list. The mask store, registry,
// respawn tracker, and session machine are owned by the game and live for
// the whole run.
func New(levels []*level.Def, cfg config.GameConfig, logger *log.Logger) *Game {
	reg := mask.NewRegistry(logger)
	store := mask.NewStore(mask.MaxBits, reg)
	tracker := respawn.NewTracker(logger)
	provider := &graphProvider{defs: levels, logger: logger}

	return &Game{
		cfg:     cfg,
		levels:  levels,
		logger:  logger,
		store:   store,
		tracker: tracker,
		machine: session.NewMachine(store, tracker, provider, logger),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "bitgate" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Bitgate" }

// SetStartLevel picks the level the next Reset begins from. Out-of-range
// values are clamped.
func (g *Game) SetStartLevel(index int) {
	g.startLevel = core.Clamp(index, 0, len(g.levels)-1)
}

// OnLevelFinished adds a hook called once per finished level attempt.
func (g *Game) OnLevelFinished(hook func(RunRecord)) {
	g.finishedHooks = append(g.finishedHooks, hook)
}

// Mask exposes the bitmask store, mainly for the HUD and debug input.
func (g *Game) Mask() *mask.Store { return g.store }

// Session exposes the lifecycle machine.
func (g *Game) Session() *session.Machine { return g.machine }

// Reset initializes or restarts the run from the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < 44 || runtime.ScreenH < 18

	g.lives = g.cfg.Gameplay.Lives
	g.deaths = 0
	g.levelDeaths = 0
	g.levelTicks = 0
	g.tickCount = 0
	g.paused = false
	g.won = false

	if err := g.machine.Start(g.startLevel); err != nil {
		g.logger.Error("game: start failed", "error", err)
		return
	}
	g.player.PlaceAt(g.tracker.ActivePosition())
}

// graph returns the live object graph, or nil outside Playing.
func (g *Game) graph() *objects.Graph {
	lvl := g.machine.CurrentLevel()
	if lvl == nil {
		return nil
	}
	gr, ok := lvl.(*objects.Graph)
	if !ok {
		return nil
	}
	return gr
}

// solidAt reports whether a cell blocks movement, from the tile grid or any
// currently solid object.
func (g *Game) solidAt(x, y int) bool {
	gr := g.graph()
	if gr == nil {
		return true
	}
	if gr.Def().SolidAt(x, y) {
		return true
	}
	for _, obj := range gr.Objects() {
		s, ok := obj.(objects.Solid)
		if !ok || !s.SolidNow() {
			continue
		}
		if obj.Bounds().Contains(x, y) {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	st := g.machine.State()

	if in.Has(core.ActionRestart) {
		if st == session.GameOver {
			g.Reset(g.runtime)
		} else if st == session.Playing {
			g.restartLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && st == session.Playing {
		g.paused = !g.paused
	}
	if g.paused || st != session.Playing {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.levelTicks++

	if g.cfg.Gameplay.DebugBitKeys {
		for _, bit := range in.ToggleBits {
			if err := g.store.ToggleBit(bit); err != nil {
				g.logger.Debug("game: toggle ignored", "bit", bit, "error", err)
			}
		}
	}

	if in.Has(core.ActionUse) {
		g.useNearby()
	}

	g.stepHorizontal(in)
	g.stepVertical(in)
	g.resolveContacts()

	return core.StepResult{State: g.State()}
}

// restartLevel reloads the current level, keeping run totals.
func (g *Game) restartLevel() {
	index := g.machine.LevelIndex()
	g.levelDeaths = 0
	g.levelTicks = 0
	if err := g.machine.Start(index); err != nil {
		g.logger.Error("game: restart failed", "level", index, "error", err)
		return
	}
	g.player.PlaceAt(g.tracker.ActivePosition())
}

// useNearby operates the first usable object on or next to the player.
func (g *Game) useNearby() {
	gr := g.graph()
	if gr == nil {
		return
	}
	cell := g.player.Cell()
	for _, obj := range gr.Objects() {
		u, ok := obj.(objects.Usable)
		if !ok {
			continue
		}
		b := obj.Bounds()
		if b.Contains(cell.X, cell.Y) ||
			b.Contains(cell.X-1, cell.Y) || b.Contains(cell.X+1, cell.Y) {
			u.Use()
			return
		}
	}
}

func (g *Game) stepHorizontal(in core.InputFrame) {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir == 0 {
		return
	}

	p := &g.player
	cell := p.Cell()
	newX := p.X + Fixed(dir*g.cfg.Physics.MoveSpeed)
	newX = ClampFixed(newX, 0, ToFixed(g.graph().Def().Width-1))

	// Move speed is under one cell per tick, so at most one boundary is
	// crossed.
	ncx := newX.ToCellRounded()
	if ncx != cell.X && g.solidAt(ncx, cell.Y) {
		p.X = ToFixed(cell.X)
		return
	}
	p.X = newX
}

func (g *Game) stepVertical(in core.InputFrame) {
	p := &g.player
	cell := p.Cell()

	if p.OnGround && !g.solidAt(cell.X, cell.Y+1) {
		// ground dropped out from under us (a platform bit flipped)
		p.OnGround = false
		p.Coyote = g.cfg.Physics.CoyoteTicks
	}

	if in.Has(core.ActionJump) && (p.OnGround || p.Coyote > 0) {
		p.VY = -Fixed(g.cfg.Physics.JumpImpulse)
		p.OnGround = false
		p.Coyote = 0
	}

	if p.OnGround {
		return
	}
	if p.Coyote > 0 {
		p.Coyote--
	}

	p.VY = ClampFixed(p.VY+Fixed(g.cfg.Physics.Gravity), -Fixed(g.cfg.Physics.JumpImpulse), Fixed(g.cfg.Physics.MaxFallSpeed))
	newY := p.Y + p.VY
	target := newY.ToCellRounded()

	if p.VY > 0 {
		// walk down cell by cell so fast falls cannot tunnel through a
		// one-cell platform
		for yy := cell.Y + 1; yy <= target; yy++ {
			if g.solidAt(cell.X, yy) {
				p.Y = ToFixed(yy - 1)
				p.VY = 0
				p.OnGround = true
				return
			}
		}
	} else if p.VY < 0 {
		for yy := cell.Y - 1; yy >= target; yy-- {
			if g.solidAt(cell.X, yy) {
				p.Y = ToFixed(yy + 1)
				p.VY = 0
				return
			}
		}
	}
	p.Y = newY
}

// resolveContacts applies object effects at the player's cell after movement
// settles: hazards first, then checkpoints, portals, and the exit.
func (g *Game) resolveContacts() {
	gr := g.graph()
	if gr == nil {
		return
	}
	cell := g.player.Cell()

	for _, obj := range gr.Objects() {
		if !obj.Bounds().Contains(cell.X, cell.Y) {
			continue
		}
		if d, ok := obj.(objects.Deadly); ok && d.DeadlyNow() {
			g.die()
			return
		}
	}

	for _, obj := range gr.Objects() {
		if !obj.Bounds().Contains(cell.X, cell.Y) {
			continue
		}
		if t, ok := obj.(objects.Trigger); ok {
			t.OnPlayerTouch()
		}
		if pt, ok := obj.(objects.Portal); ok {
			if target, active := pt.PortalNow(); active && target != cell {
				g.player.PlaceAt(target)
				return
			}
		}
		if goal, ok := obj.(objects.Goal); ok && goal.GoalNow() {
			g.completeLevel()
			return
		}
	}
}

// die respawns the player at the active respawn point, or ends the run when
// no lives remain. The mask is left untouched on death; only a level
// transition resets it.
func (g *Game) die() {
	g.deaths++
	g.levelDeaths++
	g.lives--

	if g.lives <= 0 {
		g.fireFinished(false)
		g.machine.EndGame()
		return
	}
	g.player.PlaceAt(g.tracker.ActivePosition())
}

// completeLevel reports the attempt and moves on. Advancing past the last
// level ends the session as a win.
func (g *Game) completeLevel() {
	g.fireFinished(true)

	if err := g.machine.Advance(); err != nil {
		g.logger.Error("game: advance failed", "error", err)
		return
	}
	if g.machine.State() == session.GameOver {
		g.won = true
		return
	}
	g.levelDeaths = 0
	g.levelTicks = 0
	g.player.PlaceAt(g.tracker.ActivePosition())
}

func (g *Game) fireFinished(completed bool) {
	gr := g.graph()
	if gr == nil {
		return
	}
	rec := RunRecord{
		LevelID:   gr.Def().ID,
		Completed: completed,
		Deaths:    g.levelDeaths,
		Ticks:     g.levelTicks,
	}
	for _, hook := range g.finishedHooks {
		hook(rec)
	}
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	st := g.machine.State()
	return core.GameState{
		Level:    g.machine.LevelIndex(),
		Deaths:   g.deaths,
		GameOver: st == session.GameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
