// Package rack implements a fixed-capacity, single-type slot pool.
//
// # Overview
//
// A Rack owns N storage slots for values of one type T. Adding a value puts
// it into the first free slot and returns a Unit, an exclusive handle to
// that slot. Releasing the Unit destroys the value and makes the slot
// reusable. The storage is part of the Rack itself, so a Rack declared as a
// variable or struct field needs no further allocation. This is useful for:
//
//   - Bounded working sets whose size is known up front
//   - Code paths that must not allocate per value
//   - Recursive structures built from a fixed budget of nodes
//
// # Basic Usage
//
//	var r rack.Rack64[int] // 64 slots of int, ready to use
//
//	u, err := r.Add(10)
//	if err != nil {
//	    return err // errors.Is(err, rack.ErrFullRack)
//	}
//	defer u.Release()
//
//	*u.Ptr() += 1
//	fmt.Println(u.Value()) // 11
//
// MustAdd panics instead of returning ErrFullRack, for callers that know the
// rack cannot be full. Do wraps Add and Release around a callback.
//
// # Capacity
//
// Capacity is part of the type. Rack1 through Rack1024 cover powers of two;
// the general form is Rack[T, [N]Slot[T]]:
//
//	r := rack.New[string, [8]rack.Slot[string]]()
//
// # Cleanup
//
// Release runs exactly once per Unit. If *T or T implements Dropper (a
// pointer or interface value counts), Drop is called once before the slot
// is cleared. Defer Release right after a successful Add so the slot
// comes back on every exit path.
//
// A Unit is handed on with Take, which leaves the source empty:
//
//	node.next = u.Take() // u.Release() is now a no-op
//
// A stale copy of a Unit cannot reach a slot that was released and
// reused; it behaves like a released Unit.
//
// # Thread Safety
//
// Slots are claimed with an atomic compare-and-swap, so Add and the metrics
// methods may be called from many goroutines. A Unit is owned by a single
// goroutine. SafeRack adds blocking admission on top:
//
//	s := rack.NewSafeRack[Job, [16]rack.Slot[Job]]()
//	u, err := s.Add(ctx, job) // waits while all 16 slots are held
//
// # Memory Layout
//
// Each slot is the value rounded up to a word plus one word of state:
//
//	r.Footprint() == rack.LayoutSize(r.Cap(), unsafe.Sizeof(*new(T)))
//
// for value types aligned to at most a word.
//
// # Metrics and Monitoring
//
//	m := r.Metrics()
//	fmt.Printf("Held: %d/%d\n", m.Held, m.Capacity)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package rack
