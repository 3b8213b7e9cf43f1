package rack

import "unsafe"

// SlotOverhead is the per-slot bookkeeping, in bytes, added on top of the
// word-aligned value size.
const SlotOverhead = unsafe.Sizeof(uintptr(0))

// SlotSize returns the in-memory size of one slot holding a T.
func SlotSize[T any]() uintptr {
	return unsafe.Sizeof(Slot[T]{})
}

// LayoutSize returns the footprint of a rack with the given capacity whose
// values are valueSize bytes, for values aligned to at most a word.
func LayoutSize(capacity int, valueSize uintptr) uintptr {
	if capacity <= 0 {
		return 0
	}
	return uintptr(capacity) * (alignWord(valueSize) + SlotOverhead)
}

// Footprint returns the in-memory size of the rack.
func (r *Rack[T, S]) Footprint() uintptr {
	return unsafe.Sizeof(*r)
}

// alignWord rounds n up to a multiple of the pointer size.
func alignWord(n uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (n + mask) & ^mask
}
