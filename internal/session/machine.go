// Package session owns the high-level game lifecycle: menu, playing, game
// over. The machine is the only component allowed to reset the bitmask, the
// listener registry, and the respawn tracker, and it does so at well-defined
// points so no object ever observes state meant for another level.
package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mkovalev/bitgate/internal/mask"
	"github.com/mkovalev/bitgate/internal/respawn"
)

// State is the session's high-level state.
type State int

const (
	MenuIdle State = iota // initial; no level is live
	Playing               // exactly one level instance is live
	GameOver              // terminal until Start or ReturnToMenu
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case MenuIdle:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ErrOutOfRange is returned when a requested level index is outside the
// configured level list. The machine transitions to GameOver rather than
// being left in an undefined state.
var ErrOutOfRange = errors.New("session: level index out of range")

// ErrNotPlaying is returned by Advance when no level is live.
var ErrNotPlaying = errors.New("session: not playing")

// Level is a live, instantiated level object graph. Teardown must unregister
// every object the level created; it runs to completion before the machine
// touches the mask or registry, so an object being destroyed can never be
// notified by state meant for the next level.
type Level interface {
	Teardown()
}

// Provider instantiates level object graphs. Build is called after the mask,
// registry, and respawn tracker have been reset; objects register themselves
// and establish the initial spawn during Build.
type Provider interface {
	Count() int
	Build(index int, store *mask.Store, tracker *respawn.Tracker) (Level, error)
}

// Machine drives the session lifecycle.
type Machine struct {
	store    *mask.Store
	tracker  *respawn.Tracker
	provider Provider
	logger   *log.Logger

	state      State
	levelIndex int
	current    Level

	stateHooks []func(State)
}

// NewMachine creates a machine in MenuIdle with no live level.
func NewMachine(store *mask.Store, tracker *respawn.Tracker, provider Provider, logger *log.Logger) *Machine {
	return &Machine{
		store:    store,
		tracker:  tracker,
		provider: provider,
		logger:   logger,
		state:    MenuIdle,
	}
}

// State returns the current session state.
func (m *Machine) State() State {
	return m.state
}

// LevelIndex returns the zero-based index of the current level. Only
// meaningful while Playing.
func (m *Machine) LevelIndex() int {
	return m.levelIndex
}

// CurrentLevel returns the live level instance, or nil outside Playing.
func (m *Machine) CurrentLevel() Level {
	return m.current
}

// Mask returns the bitmask store the machine owns the reset points of.
func (m *Machine) Mask() *mask.Store {
	return m.store
}

// Respawn returns the respawn tracker.
func (m *Machine) Respawn() *respawn.Tracker {
	return m.tracker
}

// OnStateChanged registers a hook fired whenever the session state changes.
func (m *Machine) OnStateChanged(hook func(State)) {
	m.stateHooks = append(m.stateHooks, hook)
}

// Start loads the given level and enters Playing. A live level is torn down
// first, so a Start that supersedes another load still completes the previous
// teardown before the new level's setup begins.
//
// An index outside the configured level list is equivalent to "no more
// levels": the machine transitions to GameOver and reports ErrOutOfRange.
func (m *Machine) Start(levelIndex int) error {
	if levelIndex < 0 || levelIndex >= m.provider.Count() {
		m.teardownAndReset()
		m.setState(GameOver)
		return fmt.Errorf("%w: %d (have %d levels)", ErrOutOfRange, levelIndex, m.provider.Count())
	}
	if err := m.loadLevel(levelIndex); err != nil {
		return err
	}
	m.setState(Playing)
	return nil
}

// Advance moves to the next level, or to GameOver when no next level exists.
// Raised by the level-completion trigger.
func (m *Machine) Advance() error {
	if m.state != Playing {
		return ErrNotPlaying
	}
	next := m.levelIndex + 1
	if next >= m.provider.Count() {
		m.teardownAndReset()
		m.setState(GameOver)
		return nil
	}
	if err := m.loadLevel(next); err != nil {
		return err
	}
	return nil
}

// EndGame explicitly transitions to GameOver, tearing down the current level
// first.
func (m *Machine) EndGame() {
	m.teardownAndReset()
	m.setState(GameOver)
}

// ReturnToMenu tears down any live level and performs a full reset of the
// bitmask, the registry, and the respawn tracker. Valid from any state.
func (m *Machine) ReturnToMenu() {
	m.teardownAndReset()
	m.setState(MenuIdle)
}

// loadLevel follows the load order that keeps references from dangling:
// teardown to completion, then reset shared state, then instantiate. Objects
// in the new graph register themselves and establish the spawn during Build.
func (m *Machine) loadLevel(index int) error {
	m.teardownAndReset()

	lvl, err := m.provider.Build(index, m.store, m.tracker)
	if err != nil {
		if m.logger != nil {
			m.logger.Error("session: level build failed", "level", index, "error", err)
		}
		m.setState(GameOver)
		return fmt.Errorf("session: building level %d: %w", index, err)
	}

	m.current = lvl
	m.levelIndex = index
	return nil
}

// teardownAndReset tears down the live level (if any) to completion and then
// resets every shared resource the machine owns. The ordering is the
// subsystem's single most important correctness property: teardown finishes
// before the registry and mask are cleared.
func (m *Machine) teardownAndReset() {
	if m.current != nil {
		m.current.Teardown()
		m.current = nil
	}
	m.store.Registry().Clear()
	m.store.SetMask(0)
	m.tracker.Reset()
}

func (m *Machine) setState(next State) {
	if next == m.state {
		return
	}
	m.state = next
	for _, hook := range m.stateHooks {
		hook(next)
	}
}
