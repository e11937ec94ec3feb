package session

import (
	"errors"
	"testing"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/mask"
	"github.com/mkovalev/bitgate/internal/respawn"
)

// fakeLevel records teardown order and registers a listener on build.
type fakeLevel struct {
	index    int
	provider *fakeProvider
	listener *fakeListener
	tornDown bool
}

func (l *fakeLevel) Teardown() {
	l.tornDown = true
	l.provider.events = append(l.provider.events, "teardown")
	l.provider.store.Unregister(0, l.listener)
}

type fakeListener struct {
	notified []bool
}

func (f *fakeListener) OnBitChanged(enabled bool) {
	f.notified = append(f.notified, enabled)
}

type fakeProvider struct {
	count  int
	store  *mask.Store
	events []string
}

func (p *fakeProvider) Count() int { return p.count }

func (p *fakeProvider) Build(index int, store *mask.Store, tracker *respawn.Tracker) (Level, error) {
	p.events = append(p.events, "build")
	l := &fakeLevel{index: index, provider: p, listener: &fakeListener{}}
	if err := store.Register(0, l.listener); err != nil {
		return nil, err
	}
	tracker.EstablishInitial(core.Pt(index+1, 0))
	return l, nil
}

func newTestMachine(levels int) (*Machine, *fakeProvider) {
	store := mask.NewStore(4, mask.NewRegistry(nil))
	tracker := respawn.NewTracker(nil)
	provider := &fakeProvider{count: levels, store: store}
	return NewMachine(store, tracker, provider, nil), provider
}

func TestInitialState(t *testing.T) {
	m, _ := newTestMachine(3)
	if m.State() != MenuIdle {
		t.Errorf("initial state = %v, expected MenuIdle", m.State())
	}
	if m.CurrentLevel() != nil {
		t.Error("no level should be live in MenuIdle")
	}
}

func TestStartLoadsLevel(t *testing.T) {
	m, _ := newTestMachine(3)

	if err := m.Start(0); err != nil {
		t.Fatalf("Start(0) failed: %v", err)
	}
	if m.State() != Playing {
		t.Errorf("state = %v, expected Playing", m.State())
	}
	if m.LevelIndex() != 0 {
		t.Errorf("LevelIndex() = %d, expected 0", m.LevelIndex())
	}
	if m.CurrentLevel() == nil {
		t.Fatal("a level should be live while Playing")
	}
	if m.Respawn().ActivePosition() != core.Pt(1, 0) {
		t.Error("level setup should have established the initial spawn")
	}
}

func TestStartOutOfRange(t *testing.T) {
	m, _ := newTestMachine(3)

	err := m.Start(5)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Start(5) error = %v, expected ErrOutOfRange", err)
	}
	if m.State() != GameOver {
		t.Errorf("state = %v, expected GameOver, not an inconsistent Playing", m.State())
	}
	if m.CurrentLevel() != nil {
		t.Error("no level may be live after an out-of-range start")
	}
}

func TestAdvanceToNextLevel(t *testing.T) {
	m, p := newTestMachine(2)
	m.Start(0)
	p.events = nil

	if err := m.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if m.State() != Playing {
		t.Errorf("state = %v, expected Playing on level advance", m.State())
	}
	if m.LevelIndex() != 1 {
		t.Errorf("LevelIndex() = %d, expected 1", m.LevelIndex())
	}

	// Teardown of the old level must complete before the new build
	if len(p.events) != 2 || p.events[0] != "teardown" || p.events[1] != "build" {
		t.Errorf("load order = %v, expected teardown before build", p.events)
	}
}

func TestAdvancePastLastLevel(t *testing.T) {
	m, _ := newTestMachine(1)
	m.Start(0)
	m.Mask().SetBit(0, true)

	if err := m.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if m.State() != GameOver {
		t.Errorf("state = %v, expected GameOver after the last level", m.State())
	}

	// Registry and mask are empty/zero immediately after teardown
	if !m.Mask().Registry().Empty() {
		t.Error("registry should be empty after the final teardown")
	}
	if m.Mask().Value() != 0 {
		t.Errorf("mask = %#b after teardown, expected zero", m.Mask().Value())
	}
}

func TestAdvanceOutsidePlaying(t *testing.T) {
	m, _ := newTestMachine(2)
	if err := m.Advance(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Advance() in MenuIdle = %v, expected ErrNotPlaying", err)
	}
}

func TestEndGame(t *testing.T) {
	m, p := newTestMachine(3)
	m.Start(1)
	lvl := m.CurrentLevel().(*fakeLevel)

	m.EndGame()
	if m.State() != GameOver {
		t.Errorf("state = %v, expected GameOver", m.State())
	}
	if !lvl.tornDown {
		t.Error("EndGame should tear down the live level")
	}
	_ = p
}

func TestReturnToMenuFullReset(t *testing.T) {
	m, _ := newTestMachine(3)
	m.Start(0)
	m.Mask().SetBit(2, true)
	m.Respawn().ActivateCheckpoint(core.Pt(9, 9))

	m.ReturnToMenu()

	if m.State() != MenuIdle {
		t.Errorf("state = %v, expected MenuIdle", m.State())
	}
	if m.Mask().Value() != 0 {
		t.Error("mask should be zero after ReturnToMenu")
	}
	if !m.Mask().Registry().Empty() {
		t.Error("registry should be empty after ReturnToMenu")
	}
	if m.Respawn().Established() {
		t.Error("respawn tracker should be fully reset after ReturnToMenu")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m, _ := newTestMachine(1)
	m.Start(0)
	m.Advance() // GameOver

	if err := m.Start(0); err != nil {
		t.Fatalf("Start after GameOver failed: %v", err)
	}
	if m.State() != Playing {
		t.Errorf("state = %v, expected Playing", m.State())
	}
}

func TestStateChangeHook(t *testing.T) {
	m, _ := newTestMachine(2)
	var states []State
	m.OnStateChanged(func(s State) { states = append(states, s) })

	m.Start(0)
	m.Advance() // still Playing, no hook
	m.Advance() // GameOver
	m.ReturnToMenu()

	want := []State{Playing, GameOver, MenuIdle}
	if len(states) != len(want) {
		t.Fatalf("state hook calls = %v, expected %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("state hook calls = %v, expected %v", states, want)
		}
	}
}

func TestFreshLevelSeesFreshState(t *testing.T) {
	m, _ := newTestMachine(2)
	m.Start(0)
	first := m.CurrentLevel().(*fakeLevel)
	m.Mask().SetBit(0, true)
	firstNotifs := len(first.listener.notified)

	m.Advance()
	second := m.CurrentLevel().(*fakeLevel)

	// The old level's listener must receive nothing for the new level;
	// the new listener was immediately notified with the reset bit (false).
	if len(first.listener.notified) != firstNotifs {
		t.Error("old level listener notified after teardown")
	}
	if len(second.listener.notified) != 1 || second.listener.notified[0] != false {
		t.Errorf("new listener notifications = %v, expected one false on register", second.listener.notified)
	}
}
