package respawn

import (
	"testing"

	"github.com/mkovalev/bitgate/internal/core"
)

func TestEstablishAndQuery(t *testing.T) {
	tr := NewTracker(nil)
	p := core.Pt(5, 7)

	tr.EstablishInitial(p)
	if got := tr.ActivePosition(); got != p {
		t.Errorf("ActivePosition() = %+v, expected %+v", got, p)
	}
	if !tr.Established() {
		t.Error("Established() should be true after EstablishInitial")
	}
}

func TestCheckpointOverrideAndReset(t *testing.T) {
	tr := NewTracker(nil)
	p := core.Pt(1, 1)
	q := core.Pt(9, 3)

	tr.EstablishInitial(p)
	tr.ActivateCheckpoint(q)
	if got := tr.ActivePosition(); got != q {
		t.Errorf("ActivePosition() = %+v after checkpoint, expected %+v", got, q)
	}

	tr.ResetToInitial()
	if got := tr.ActivePosition(); got != p {
		t.Errorf("ActivePosition() = %+v after reset, expected initial %+v", got, p)
	}
}

func TestCheckpointHookOnlyForGenuineCheckpoints(t *testing.T) {
	tr := NewTracker(nil)
	p := core.Pt(2, 2)
	var fired []core.Point
	tr.OnCheckpointActivated(func(pos core.Point) { fired = append(fired, pos) })

	tr.EstablishInitial(p)

	// Activating at exactly the initial position is not a new checkpoint
	tr.ActivateCheckpoint(p)
	if len(fired) != 0 {
		t.Errorf("hook fired for activation at the initial position: %v", fired)
	}

	q := core.Pt(8, 8)
	tr.ActivateCheckpoint(q)
	if len(fired) != 1 || fired[0] != q {
		t.Errorf("hook calls = %v, expected one at %+v", fired, q)
	}
}

func TestFallbackWhenUnconfigured(t *testing.T) {
	tr := NewTracker(nil)

	if got := tr.ActivePosition(); got != core.Origin {
		t.Errorf("unconfigured ActivePosition() = %+v, expected origin", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(nil)
	tr.EstablishInitial(core.Pt(3, 3))
	tr.ActivateCheckpoint(core.Pt(6, 6))

	tr.Reset()
	if tr.Established() {
		t.Error("Reset should forget the initial position")
	}
	if got := tr.ActivePosition(); got != core.Origin {
		t.Errorf("ActivePosition() after Reset = %+v, expected origin fallback", got)
	}
}
