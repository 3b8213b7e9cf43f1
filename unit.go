package rack

// releaser is notified after a Unit gives its slot back.
type releaser interface {
	unitReleased()
}

// Unit is an exclusive handle to one held slot of a Rack. It is the only
// way to reach the stored value. Release destroys the value and frees the
// slot; defer it right after a successful Add.
//
// Hand a Unit on with Take rather than by copying it. A stale copy whose
// slot has been released is treated as released: it cannot read, write or
// free a slot that now belongs to another Unit.
type Unit[T any] struct {
	slot   *Slot[T]
	ticket uintptr
	index  int
	gate   releaser
}

// Value returns the stored value.
func (u *Unit[T]) Value() T {
	return u.live().value
}

// Ptr returns a pointer to the stored value. Reads and writes through it
// act on the slot itself. The pointer must not be used after Release.
func (u *Unit[T]) Ptr() *T {
	return &u.live().value
}

// Set replaces the stored value. The old value is overwritten without
// calling Drop.
func (u *Unit[T]) Set(value T) {
	u.live().value = value
}

// Index returns the position of the unit's slot within its rack.
func (u *Unit[T]) Index() int {
	u.live()
	return u.index
}

// Live reports whether the unit still owns its slot.
func (u *Unit[T]) Live() bool {
	return u.slot != nil && u.slot.owns(u.ticket)
}

// Take moves ownership out of u into the returned Unit. Afterwards u is
// released without touching the slot.
func (u *Unit[T]) Take() Unit[T] {
	moved := *u
	*u = Unit[T]{}
	return moved
}

// Release drops the stored value and returns the slot to its rack.
// Calling Release again, or on a stale copy, does nothing.
func (u *Unit[T]) Release() {
	s, g, ticket := u.slot, u.gate, u.ticket
	if s == nil {
		return
	}
	*u = Unit[T]{}
	if !s.owns(ticket) {
		return
	}
	if g != nil {
		defer g.unitReleased()
	}
	s.release(ticket)
}

// live returns the unit's slot, panicking if the unit was released.
func (u *Unit[T]) live() *Slot[T] {
	if !u.Live() {
		panic("rack: use of released unit")
	}
	return u.slot
}
