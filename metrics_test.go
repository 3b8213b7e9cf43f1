package rack

import (
	"testing"
)

func TestRackMetrics(t *testing.T) {
	var r Rack4[int]

	// Initial state
	if r.Held() != 0 {
		t.Errorf("Initial Held = %d, want 0", r.Held())
	}
	if r.Free() != 4 {
		t.Errorf("Initial Free = %d, want 4", r.Free())
	}
	if r.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", r.Utilization())
	}

	a := r.MustAdd(1)
	b := r.MustAdd(2)
	c := r.MustAdd(3)
	b.Release()

	if r.Held() != 2 {
		t.Errorf("Held = %d, want 2", r.Held())
	}
	if r.Utilization() != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", r.Utilization())
	}

	metrics := r.Metrics()
	if metrics.Capacity != 4 {
		t.Errorf("Metrics.Capacity = %d, want 4", metrics.Capacity)
	}
	if metrics.Held != r.Held() {
		t.Errorf("Metrics.Held = %d, want %d", metrics.Held, r.Held())
	}
	if metrics.Free != r.Free() {
		t.Errorf("Metrics.Free = %d, want %d", metrics.Free, r.Free())
	}
	if metrics.SlotSize != SlotSize[int]() {
		t.Errorf("Metrics.SlotSize = %d, want %d", metrics.SlotSize, SlotSize[int]())
	}
	if metrics.Footprint != r.Footprint() {
		t.Errorf("Metrics.Footprint = %d, want %d", metrics.Footprint, r.Footprint())
	}
	if metrics.Utilization != r.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, r.Utilization())
	}

	a.Release()
	c.Release()
	if r.Held() != 0 {
		t.Errorf("Held after releasing all = %d, want 0", r.Held())
	}
}

func TestRackOccupancy(t *testing.T) {
	var r Rack8[int]
	units := make([]Unit[int], 0, 5)
	for i := 0; i < 5; i++ {
		units = append(units, r.MustAdd(i))
	}
	units[1].Release()
	units[3].Release()

	occ := r.Occupancy()
	if occ.Len() != 8 {
		t.Errorf("Occupancy length = %d, want 8", occ.Len())
	}
	want := map[uint]bool{0: true, 1: false, 2: true, 3: false, 4: true, 5: false, 6: false, 7: false}
	for i, held := range want {
		if occ.Test(i) != held {
			t.Errorf("Occupancy bit %d = %v, want %v", i, occ.Test(i), held)
		}
	}
	if next, ok := occ.NextClear(0); !ok || next != 1 {
		t.Errorf("first free slot = %d (%v), want 1", next, ok)
	}

	// The next Add takes the lowest free slot.
	u := r.MustAdd(9)
	if u.Index() != 1 {
		t.Errorf("Add took slot %d, want 1", u.Index())
	}
}
