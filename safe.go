package rack

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// SafeRack wraps a Rack with blocking admission: Add waits for a slot to
// be released instead of failing when the rack is full.
// All methods are safe for concurrent use.
type SafeRack[T any, S Storage[T]] struct {
	r   Rack[T, S]
	sem *semaphore.Weighted
}

// NewSafeRack creates an empty SafeRack backed by storage S.
func NewSafeRack[T any, S Storage[T]]() *SafeRack[T, S] {
	s := &SafeRack[T, S]{}
	s.sem = semaphore.NewWeighted(int64(s.r.Cap()))
	return s
}

// Add stores value, waiting for a free slot if necessary. It returns
// ctx.Err() if the context is done before a slot frees up.
func (s *SafeRack[T, S]) Add(ctx context.Context, value T) (Unit[T], error) {
	if !s.sem.TryAcquire(1) {
		log().Debug("rack full, waiting for a slot", "capacity", s.r.Cap())
		if err := s.sem.Acquire(ctx, 1); err != nil {
			log().Debug("gave up waiting for a slot", "error", err)
			return Unit[T]{}, err
		}
	}
	return s.admit(value), nil
}

// TryAdd stores value without waiting. It returns ErrFullRack if no
// slot is free.
func (s *SafeRack[T, S]) TryAdd(value T) (Unit[T], error) {
	if !s.sem.TryAcquire(1) {
		return Unit[T]{}, ErrFullRack
	}
	return s.admit(value), nil
}

// admit adds value to the underlying rack. The caller holds a token, so
// a free slot is guaranteed.
func (s *SafeRack[T, S]) admit(value T) Unit[T] {
	u := s.r.MustAdd(value)
	u.gate = s
	return u
}

func (s *SafeRack[T, S]) unitReleased() {
	s.sem.Release(1)
}

// Cap returns the number of slots in the rack.
func (s *SafeRack[T, S]) Cap() int {
	return s.r.Cap()
}

// Metrics returns a snapshot of rack statistics.
func (s *SafeRack[T, S]) Metrics() RackMetrics {
	return s.r.Metrics()
}
