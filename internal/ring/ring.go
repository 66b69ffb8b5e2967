package ring

// Ring is a fixed-capacity FIFO buffer. Pushing onto a full ring drops
// the oldest element. Values are kept oldest-first.
type Ring[T any] struct {
	capacity int
	items    []T
}

// New returns a new Ring with the given capacity. A capacity below 1 is
// treated as 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}

	return &Ring[T]{
		capacity: capacity,
		items:    make([]T, 0, capacity),
	}
}

// Push appends a value, evicting the oldest entry when full
func (r *Ring[T]) Push(v T) {
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items[len(r.items)-1] = v
		return
	}

	r.items = append(r.items, v)
}

// Len returns the number of buffered values
func (r *Ring[T]) Len() int {
	return len(r.items)
}

// Capacity returns the fixed capacity of the ring
func (r *Ring[T]) Capacity() int {
	return r.capacity
}

// Values returns a copy of the buffered values, oldest first
func (r *Ring[T]) Values() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Clear drops all buffered values
func (r *Ring[T]) Clear() {
	r.items = r.items[:0]
}
