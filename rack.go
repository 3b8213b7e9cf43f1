package rack

// Rack is a fixed-capacity pool of slots holding values of type T. The
// capacity is the length of the storage array S and never changes.
//
// The zero value is an empty Rack ready for use. A Rack must not be copied
// after first use and must outlive every Unit taken from it.
//
// Add, MustAdd and the metrics methods are safe for concurrent use.
// A Unit is not; it belongs to whoever received it.
type Rack[T any, S Storage[T]] struct {
	slots S
}

// Fixed-capacity shorthands.
type (
	Rack1[T any]    = Rack[T, [1]Slot[T]]
	Rack2[T any]    = Rack[T, [2]Slot[T]]
	Rack4[T any]    = Rack[T, [4]Slot[T]]
	Rack8[T any]    = Rack[T, [8]Slot[T]]
	Rack16[T any]   = Rack[T, [16]Slot[T]]
	Rack32[T any]   = Rack[T, [32]Slot[T]]
	Rack64[T any]   = Rack[T, [64]Slot[T]]
	Rack128[T any]  = Rack[T, [128]Slot[T]]
	Rack256[T any]  = Rack[T, [256]Slot[T]]
	Rack512[T any]  = Rack[T, [512]Slot[T]]
	Rack1024[T any] = Rack[T, [1024]Slot[T]]
)

// New returns an empty Rack backed by storage S.
func New[T any, S Storage[T]]() *Rack[T, S] {
	return new(Rack[T, S])
}

// Cap returns the number of slots in the rack.
func (r *Rack[T, S]) Cap() int {
	return len(r.slots)
}

// Add stores value in the lowest-index free slot and returns the Unit
// owning it. If every slot is held it returns ErrFullRack and nothing
// changes.
func (r *Rack[T, S]) Add(value T) (Unit[T], error) {
	for i := range len(r.slots) {
		s := &r.slots[i]
		if ticket, ok := s.tryAcquire(); ok {
			s.value = value
			return Unit[T]{slot: s, ticket: ticket, index: i}, nil
		}
	}
	return Unit[T]{}, ErrFullRack
}

// MustAdd is like Add but panics when the rack is full. Use it only when
// the rack cannot be exhausted by construction.
func (r *Rack[T, S]) MustAdd(value T) Unit[T] {
	u, err := r.Add(value)
	if err != nil {
		log().Error("rack full on MustAdd", "capacity", len(r.slots))
		panic(err)
	}
	return u
}

// Do adds value, calls fn with a pointer to the stored value and releases
// the slot when fn returns or panics. It returns the Add error, if any,
// or the error returned by fn.
func (r *Rack[T, S]) Do(value T, fn func(*T) error) error {
	u, err := r.Add(value)
	if err != nil {
		return err
	}
	defer u.Release()
	return fn(u.Ptr())
}
