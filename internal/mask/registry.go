package mask

import (
	"github.com/charmbracelet/log"
)

// Listener is the capability a world object implements to react to a bit
// change. The registry holds references typed to this interface; there is no
// name-based dispatch.
type Listener interface {
	// OnBitChanged is called with the bit's new value. It is invoked
	// synchronously during the mutation that changed the bit and must not
	// mutate the mask reentrantly.
	OnBitChanged(enabled bool)
}

// Registry maps each bit index to the ordered set of listeners currently
// interested in that bit. Listeners join as level objects are created and
// leave when they are destroyed; the owning level tears its object graph down
// as a unit, so the registry never holds a reference to a destroyed object.
//
// The registry does not own its listeners and never polls for liveness.
type Registry struct {
	entries map[int][]Listener
	logger  *log.Logger
}

// NewRegistry creates an empty registry. Listener faults are reported to
// logger; a nil logger suppresses fault reporting but still isolates faults.
func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		entries: make(map[int][]Listener),
		logger:  logger,
	}
}

// add appends l to the entry for bit i, preserving registration order.
// Returns false if l was already registered for that bit (set semantics:
// duplicates must not cause double notification).
func (r *Registry) add(i int, l Listener) bool {
	for _, existing := range r.entries[i] {
		if existing == l {
			return false
		}
	}
	r.entries[i] = append(r.entries[i], l)
	return true
}

// remove deletes one association. Removing an absent listener is a no-op.
func (r *Registry) remove(i int, l Listener) {
	list := r.entries[i]
	for idx, existing := range list {
		if existing == l {
			r.entries[i] = append(list[:idx], list[idx+1:]...)
			if len(r.entries[i]) == 0 {
				delete(r.entries, i)
			}
			return
		}
	}
}

// UnregisterAll removes every listener registered for bit i. Used during
// teardown when a whole category of objects goes away at once.
func (r *Registry) UnregisterAll(i int) {
	delete(r.entries, i)
}

// Clear drops every association regardless of bit index. Called by the
// session lifecycle on level teardown.
func (r *Registry) Clear() {
	r.entries = make(map[int][]Listener)
}

// Count returns the number of listeners registered for bit i.
func (r *Registry) Count(i int) int {
	return len(r.entries[i])
}

// Empty reports whether no listeners are registered at all.
func (r *Registry) Empty() bool {
	return len(r.entries) == 0
}

// Dispatch notifies every listener registered for bit i of its new value, in
// registration order, synchronously on the calling goroutine.
//
// A panicking listener is a programming error in that listener, not a reason
// to starve the others: the fault is recovered, reported, and dispatch
// continues with the remaining listeners. The mutation that triggered the
// dispatch is never aborted.
func (r *Registry) Dispatch(i int, enabled bool) {
	list := r.entries[i]
	if len(list) == 0 {
		return
	}

	// Snapshot so a listener that unregisters itself (or registers a new
	// listener) during notification cannot skip or double-notify others.
	snapshot := make([]Listener, len(list))
	copy(snapshot, list)

	for _, l := range snapshot {
		r.notify(i, l, enabled)
	}
}

// notify invokes a single listener, isolating any panic it raises.
func (r *Registry) notify(i int, l Listener, enabled bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Error("mask: listener fault", "bit", i, "enabled", enabled, "panic", rec)
			}
		}
	}()
	l.OnBitChanged(enabled)
}
