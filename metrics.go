package rack

import "github.com/bits-and-blooms/bitset"

// Held returns the number of slots currently owned by a Unit.
// Under concurrent use the result is a point-in-time estimate.
func (r *Rack[T, S]) Held() int {
	n := 0
	for i := range len(r.slots) {
		if r.slots[i].held() {
			n++
		}
	}
	return n
}

// Free returns the number of slots available to Add.
func (r *Rack[T, S]) Free() int {
	return len(r.slots) - r.Held()
}

// Utilization returns the ratio of held slots to capacity (0.0 to 1.0).
func (r *Rack[T, S]) Utilization() float64 {
	return float64(r.Held()) / float64(len(r.slots))
}

// Occupancy returns a bit set with bit i set when slot i is held.
func (r *Rack[T, S]) Occupancy() *bitset.BitSet {
	b := bitset.New(uint(len(r.slots)))
	for i := range len(r.slots) {
		if r.slots[i].held() {
			b.Set(uint(i))
		}
	}
	return b
}

// Metrics returns a snapshot of rack statistics.
func (r *Rack[T, S]) Metrics() RackMetrics {
	occ := r.Occupancy()
	held := int(occ.Count())
	return RackMetrics{
		Capacity:    len(r.slots),
		Held:        held,
		Free:        len(r.slots) - held,
		SlotSize:    SlotSize[T](),
		Footprint:   r.Footprint(),
		Utilization: float64(held) / float64(len(r.slots)),
	}
}

// RackMetrics contains statistical information about a rack.
type RackMetrics struct {
	Capacity    int     // Number of slots
	Held        int     // Slots owned by a live Unit
	Free        int     // Slots available to Add
	SlotSize    uintptr // Bytes per slot
	Footprint   uintptr // Bytes used by the whole rack
	Utilization float64 // Ratio of held slots to capacity (0.0-1.0)
}
