// Package ring provides a fixed-capacity ring buffer for sample storage.
package ring

// Buffer is a fixed-capacity ring. Pushing into a full Buffer evicts the
// oldest element. The zero value is not usable, construct with New or Wrap.
type Buffer[T any] struct {
	buf []T
	pos int // next slot to write, also the oldest element when full
	n   int // valid elements, never exceeds len(buf)
}

// New returns a Buffer with its own storage for capacity elements.
func New[T any](capacity int) Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return Buffer[T]{buf: make([]T, capacity)}
}

// Wrap returns a Buffer backed by the caller's slice, which must not be empty.
// The Buffer owns the slice contents from here on and never allocates, so the
// backing storage can live on the caller's stack or in static data.
func Wrap[T any](buf []T) Buffer[T] {
	return Buffer[T]{buf: buf}
}

// Push stores v. When the Buffer is full the oldest element is overwritten
// and returned with evicted=true.
func (b *Buffer[T]) Push(v T) (old T, evicted bool) {
	if b.n == len(b.buf) {
		old, evicted = b.buf[b.pos], true
	} else {
		b.n++
	}
	b.buf[b.pos] = v
	b.pos = (b.pos + 1) % len(b.buf)
	return old, evicted
}

// At returns the i:th element counting from the oldest. i must be in [0, Len()).
func (b *Buffer[T]) At(i int) T {
	start := 0
	if b.n == len(b.buf) {
		start = b.pos
	}
	return b.buf[(start+i)%len(b.buf)]
}

// Len returns the number of valid elements.
func (b *Buffer[T]) Len() int { return b.n }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// Full reports whether the next Push will evict.
func (b *Buffer[T]) Full() bool { return b.n == len(b.buf) }

// Reset empties the Buffer, keeping its storage.
func (b *Buffer[T]) Reset() {
	clear(b.buf)
	b.pos = 0
	b.n = 0
}
