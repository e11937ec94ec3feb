// Package objects implements the world object kinds a level is built from:
// hazards, platforms, walls, teleporters, bit terminals, checkpoints, spawn
// markers, and exits. Gated kinds listen to one mask bit each and flip their
// own state synchronously when the bit changes.
package objects

import (
	"github.com/charmbracelet/log"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/mask"
	"github.com/mkovalev/bitgate/internal/respawn"
)

// Env carries the shared state objects hook into during setup and teardown.
type Env struct {
	Store   *mask.Store
	Tracker *respawn.Tracker
	Logger  *log.Logger
}

// Object is a world object instantiated from a level definition.
type Object interface {
	// Kind returns the object's registered kind name.
	Kind() string

	// Bounds returns the cells the object occupies.
	Bounds() core.Rect

	// Draw renders the object into the screen buffer.
	Draw(dst *core.Screen)

	// Teardown detaches the object from everything it registered with.
	// Called exactly once, by the owning graph, as part of level teardown.
	Teardown()
}

// Solid is implemented by objects that can block movement.
type Solid interface {
	SolidNow() bool
}

// Deadly is implemented by objects that can kill the player on contact.
type Deadly interface {
	DeadlyNow() bool
}

// Usable is implemented by objects the player can operate with the use action.
type Usable interface {
	Use()
}

// Portal is implemented by objects that relocate the player on contact.
// ok is false while the portal is inactive.
type Portal interface {
	PortalNow() (target core.Point, ok bool)
}

// Trigger is implemented by objects that react to the player entering their
// cell.
type Trigger interface {
	OnPlayerTouch()
}

// Goal is implemented by objects that complete the level on contact.
type Goal interface {
	GoalNow() bool
}

// gated is the shared listener state for objects controlled by one mask bit.
// The raw bit value is tracked as-is; Active applies the inversion flag, so
// an inverted object is active while its bit is clear.
type gated struct {
	store    *mask.Store
	bit      int
	inverted bool
	enabled  bool
}

// OnBitChanged implements mask.Listener.
func (g *gated) OnBitChanged(enabled bool) {
	g.enabled = enabled
}

// Active reports whether the object's behavior is currently on.
func (g *gated) Active() bool {
	return g.enabled != g.inverted
}

// attach registers with the mask store; the immediate notification the store
// sends on register initializes the enabled state.
func (g *gated) attach(store *mask.Store) error {
	g.store = store
	return store.Register(g.bit, g)
}

// detach removes the registration. Safe to call when never attached.
func (g *gated) detach() {
	if g.store != nil {
		g.store.Unregister(g.bit, g)
		g.store = nil
	}
}
