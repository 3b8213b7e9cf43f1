package rack

import "sync/atomic"

// slotHeld is the low bit of a slot's state word. The remaining bits count
// acquire/release cycles, so every acquisition yields a distinct ticket.
const slotHeld uintptr = 1

// Slot is one storage cell of a Rack. It holds at most one value of type T
// and a word-sized exclusivity flag. Callers never touch a Slot directly;
// the type is exported only so capacities can be spelled as [N]Slot[T].
//
// The value is defined only while the slot is held.
type Slot[T any] struct {
	value T
	state atomic.Uintptr
}

// Storage is the set of fixed-length slot arrays a Rack can be built on.
// The array length is the Rack's capacity.
type Storage[T any] interface {
	~[1]Slot[T] | ~[2]Slot[T] | ~[4]Slot[T] | ~[8]Slot[T] |
		~[16]Slot[T] | ~[32]Slot[T] | ~[64]Slot[T] | ~[128]Slot[T] |
		~[256]Slot[T] | ~[512]Slot[T] | ~[1024]Slot[T]
}

// Dropper is implemented by values that need cleanup when their Unit is
// released. Drop is called exactly once, before the slot becomes free.
// Both T and *T are checked, so pointer and interface values whose
// dynamic type implements Dropper are dropped too.
type Dropper interface {
	Drop()
}

// tryAcquire flips the slot from free to held and returns the ticket that
// identifies this acquisition. It reports false if the slot is held.
func (s *Slot[T]) tryAcquire() (uintptr, bool) {
	st := s.state.Load()
	if st&slotHeld != 0 {
		return 0, false
	}
	if !s.state.CompareAndSwap(st, st+1) {
		return 0, false
	}
	return st + 1, true
}

// held reports whether the slot currently carries a live value.
func (s *Slot[T]) held() bool {
	return s.state.Load()&slotHeld != 0
}

// owns reports whether ticket is the slot's current acquisition.
func (s *Slot[T]) owns(ticket uintptr) bool {
	return s.state.Load() == ticket
}

// release destroys the stored value and marks the slot free. It does
// nothing if ticket no longer owns the slot. The slot is freed even if
// Drop panics; the panic is propagated afterwards.
func (s *Slot[T]) release(ticket uintptr) {
	if !s.owns(ticket) {
		return
	}
	defer func() {
		var zero T
		s.value = zero
		s.state.CompareAndSwap(ticket, ticket+1)
	}()
	if d, ok := any(&s.value).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(s.value).(Dropper); ok {
		d.Drop()
	}
}
