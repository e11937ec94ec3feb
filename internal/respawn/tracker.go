// Package respawn tracks where the player comes back after death: the level's
// initial spawn, or the most recently activated checkpoint.
package respawn

import (
	"github.com/charmbracelet/log"

	"github.com/mkovalev/bitgate/internal/core"
)

// Tracker owns the current respawn position for one level. Exactly one
// position is active at a time. The initial spawn is established once per
// level load and is never overwritten by checkpoint activation; checkpoints
// only move the active position, so the initial one stays recoverable.
type Tracker struct {
	initial     core.Point
	active      core.Point
	established bool

	checkpointHooks []func(core.Point)
	logger          *log.Logger
}

// NewTracker creates an empty tracker. Missing-configuration warnings are
// reported to logger; nil suppresses them.
func NewTracker(logger *log.Logger) *Tracker {
	return &Tracker{logger: logger}
}

// OnCheckpointActivated registers a hook fired only for genuine new
// checkpoints: activations whose position differs from the initial spawn.
func (t *Tracker) OnCheckpointActivated(hook func(core.Point)) {
	t.checkpointHooks = append(t.checkpointHooks, hook)
}

// EstablishInitial sets both the initial and active respawn positions.
// Called by the level's designated spawn object during level setup.
func (t *Tracker) EstablishInitial(pos core.Point) {
	t.initial = pos
	t.active = pos
	t.established = true
}

// ActivateCheckpoint moves the active respawn position. An activation at
// exactly the initial spawn is not a new checkpoint and fires no hook.
func (t *Tracker) ActivateCheckpoint(pos core.Point) {
	t.active = pos
	if pos == t.initial && t.established {
		return
	}
	for _, hook := range t.checkpointHooks {
		hook(pos)
	}
}

// ResetToInitial restores the active position to the initial spawn. Used when
// restarting a level without discarding the level's identity.
func (t *Tracker) ResetToInitial() {
	t.active = t.initial
}

// ActivePosition returns the position the player respawns at. If no initial
// position was ever established the level content is misconfigured; that is a
// warning, not a crash, and the origin is the documented fallback.
func (t *Tracker) ActivePosition() core.Point {
	if !t.established {
		if t.logger != nil {
			t.logger.Warn("respawn: no initial position established, falling back to origin")
		}
		return core.Origin
	}
	return t.active
}

// Established reports whether an initial spawn has been set for this level.
func (t *Tracker) Established() bool {
	return t.established
}

// Reset forgets everything, returning the tracker to the "no initial position
// yet" state. Called by the session lifecycle at every level load.
func (t *Tracker) Reset() {
	t.initial = core.Origin
	t.active = core.Origin
	t.established = false
}
