// Package mask implements the shared bitmask that gates level objects, the
// per-bit listener registry, and the change dispatcher. The mask is the single
// source of truth for which object categories are currently enabled; every
// mutation goes through the Store so listeners are notified synchronously and
// in a deterministic order.
package mask

import (
	"errors"
	"fmt"
)

// Width limits for the bitmask. SetMaxBits clamps into this range.
const (
	MinBits = 1
	MaxBits = 16
)

// ErrOutOfRange is returned when a bit index is outside [0, Width()).
var ErrOutOfRange = errors.New("mask: bit index out of range")

// Store owns the current mask value and its configured width.
//
// All mutation goes through the Store's setters: every write computes the
// per-bit delta against the previous value and dispatches each changed bit to
// the registry in ascending bit-index order, then fires the whole-mask hooks.
// A write that leaves the value unchanged still runs the full mutation path;
// the empty delta means no per-bit notification fires, but the whole-mask
// hooks do. The Store is not safe for concurrent use; the game is
// single-threaded and all dispatch happens on the calling goroutine.
type Store struct {
	value    uint16
	maxBits  int
	registry *Registry

	maskHooks  []func(uint16)
	widthHooks []func(int)
}

// NewStore creates a store with the given width, fanning out changes to reg.
// The width is clamped to [MinBits, MaxBits].
func NewStore(maxBits int, reg *Registry) *Store {
	s := &Store{registry: reg}
	s.maxBits = clampBits(maxBits)
	return s
}

// Registry returns the listener registry this store dispatches to.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Value returns the current mask. Only the low Width() bits are meaningful.
func (s *Store) Value() uint16 {
	return s.value
}

// Width returns the configured number of significant bits.
func (s *Store) Width() int {
	return s.maxBits
}

// OnMaskChanged registers a hook fired once per mutation, after all per-bit
// notifications, with the new mask value.
func (s *Store) OnMaskChanged(hook func(uint16)) {
	s.maskHooks = append(s.maskHooks, hook)
}

// OnMaxBitsChanged registers a hook fired when the mask width changes.
func (s *Store) OnMaxBitsChanged(hook func(int)) {
	s.widthHooks = append(s.widthHooks, hook)
}

// GetBit reports whether bit i is set.
func (s *Store) GetBit(i int) (bool, error) {
	if i < 0 || i >= s.maxBits {
		return false, fmt.Errorf("%w: %d (width %d)", ErrOutOfRange, i, s.maxBits)
	}
	return s.value&(1<<uint(i)) != 0, nil
}

// SetBit sets bit i to the given value and dispatches the mutation.
func (s *Store) SetBit(i int, value bool) error {
	if i < 0 || i >= s.maxBits {
		return fmt.Errorf("%w: %d (width %d)", ErrOutOfRange, i, s.maxBits)
	}
	next := s.value
	if value {
		next |= 1 << uint(i)
	} else {
		next &^= 1 << uint(i)
	}
	s.mutate(next)
	return nil
}

// ToggleBit flips bit i.
func (s *Store) ToggleBit(i int) error {
	cur, err := s.GetBit(i)
	if err != nil {
		return err
	}
	return s.SetBit(i, !cur)
}

// SetMask replaces the whole mask atomically. Bits above the configured width
// are discarded.
func (s *Store) SetMask(value uint16) {
	s.mutate(value & s.widthMask())
}

// SetMaxBits changes the structural width of the mask space, clamped to
// [MinBits, MaxBits]. Bits above the new width are dropped from the stored
// value without dispatch; registry entries at now-unreachable indexes are left
// for the next lifecycle reset to clear.
func (s *Store) SetMaxBits(n int) {
	n = clampBits(n)
	if n == s.maxBits {
		return
	}
	s.maxBits = n
	s.value &= s.widthMask()
	for _, hook := range s.widthHooks {
		hook(n)
	}
}

// Register adds a listener for bit i and immediately notifies it with the
// bit's current value, so a late-joining object never observes a stale state
// window. Registering the same listener twice for the same bit is a no-op.
func (s *Store) Register(i int, l Listener) error {
	if i < 0 || i >= s.maxBits {
		return fmt.Errorf("%w: %d (width %d)", ErrOutOfRange, i, s.maxBits)
	}
	if !s.registry.add(i, l) {
		return nil
	}
	cur := s.value&(1<<uint(i)) != 0
	s.registry.notify(i, l, cur)
	return nil
}

// Unregister removes one listener association for bit i.
// Unregistering a listener that is not present is a no-op.
func (s *Store) Unregister(i int, l Listener) {
	s.registry.remove(i, l)
}

// mutate installs the new value and dispatches the per-bit delta in ascending
// bit-index order, then fires the whole-mask hooks.
func (s *Store) mutate(next uint16) {
	old := s.value
	s.value = next

	changed := old ^ next
	for i := 0; i < s.maxBits; i++ {
		if changed&(1<<uint(i)) == 0 {
			continue
		}
		s.registry.Dispatch(i, next&(1<<uint(i)) != 0)
	}

	for _, hook := range s.maskHooks {
		hook(next)
	}
}

func (s *Store) widthMask() uint16 {
	if s.maxBits >= 16 {
		return 0xffff
	}
	return uint16(1)<<uint(s.maxBits) - 1
}

func clampBits(n int) int {
	if n < MinBits {
		return MinBits
	}
	if n > MaxBits {
		return MaxBits
	}
	return n
}
