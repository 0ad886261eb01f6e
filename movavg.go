// Package movavg implements a fixed-window simple moving average over any
// integer or floating-point sample type.
//
// The accumulator type is chosen independently of the sample type, so narrow
// samples can be summed in a wider type to keep the running sum in range
// (for example int8 samples with an int32 accumulator). Integer averages
// truncate toward zero. Integer accumulator overflow is detected and reported
// as ErrOverflow without touching the window state, and picking an
// accumulator wide enough to avoid it is the caller's responsibility.
// Floating-point accumulators cannot wrap, they saturate toward ±Inf.
//
// Instances have plain value semantics and are not safe for concurrent use
// without external locking.
package movavg

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/angas/movavg-go/ring"
)

var (
	// ErrWindowSize is returned when constructing with a window size below 1.
	ErrWindowSize = errors.New("movavg: window size must be at least 1")
	// ErrEmpty is returned by Get before any sample has been fed.
	ErrEmpty = errors.New("movavg: no samples fed")
	// ErrOverflow is returned by Feed when an integer accumulator would wrap.
	ErrOverflow = errors.New("movavg: accumulator overflow")
)

// MovAvg is a moving average over the last WindowSize() samples of type T,
// summed in an accumulator of type A and divided by the strategy D.
type MovAvg[T, A Number, D Divider[A]] struct {
	window ring.Buffer[T]
	sum    A
	div    D
}

// New returns a moving average with the precise division strategy and its own
// window storage for size samples.
func New[T, A Number](size int) (MovAvg[T, A, Precise[A]], error) {
	var m MovAvg[T, A, Precise[A]]
	if size < 1 {
		return m, fmt.Errorf("%w, got %d", ErrWindowSize, size)
	}
	m.window = ring.New[T](size)
	return m, nil
}

// NewFast is New with the fast division strategy. It is restricted to
// floating-point accumulators, integer division has no fast variant.
func NewFast[T Number, A constraints.Float](size int) (MovAvg[T, A, Fast[A]], error) {
	var m MovAvg[T, A, Fast[A]]
	if size < 1 {
		return m, fmt.Errorf("%w, got %d", ErrWindowSize, size)
	}
	m.window = ring.New[T](size)
	return m, nil
}

// NewOver returns a moving average whose window is the caller's slice,
// typically backed by an array value. The window size is len(buf) and the
// instance performs no heap allocation after construction. The slice contents
// are treated as unspecified until written.
func NewOver[T, A Number](buf []T) (MovAvg[T, A, Precise[A]], error) {
	var m MovAvg[T, A, Precise[A]]
	if len(buf) < 1 {
		return m, fmt.Errorf("%w, got empty buffer", ErrWindowSize)
	}
	m.window = ring.Wrap(buf)
	return m, nil
}

// NewFastOver is NewOver with the fast division strategy.
func NewFastOver[T Number, A constraints.Float](buf []T) (MovAvg[T, A, Fast[A]], error) {
	var m MovAvg[T, A, Fast[A]]
	if len(buf) < 1 {
		return m, fmt.Errorf("%w, got empty buffer", ErrWindowSize)
	}
	m.window = ring.Wrap(buf)
	return m, nil
}

// NewPrimed returns a moving average pre-seeded with the given samples, as if
// each had been fed in order. len(samples) must not exceed size.
func NewPrimed[T, A Number](size int, samples []T) (MovAvg[T, A, Precise[A]], error) {
	m, err := New[T, A](size)
	if err != nil {
		return m, err
	}
	if len(samples) > size {
		return m, fmt.Errorf("movavg: %d primed samples exceed window size %d", len(samples), size)
	}
	for _, s := range samples {
		if _, err := m.Feed(s); err != nil {
			return MovAvg[T, A, Precise[A]]{}, err
		}
	}
	return m, nil
}

// Feed stores sample, evicting the oldest sample once the window is full, and
// returns the new average: the accumulated sum divided by the number of
// contributing samples, truncating toward zero for integer accumulators.
//
// On ErrOverflow the state is left exactly as it was, so the caller can keep
// using the instance.
func (m *MovAvg[T, A, D]) Feed(sample T) (T, error) {
	if isFloat[A]() {
		m.window.Push(sample)
		// Recompute the sum from the window so the accumulator stays equal
		// to the exact sum of its samples. Incremental add/subtract would
		// accumulate rounding drift over long runs.
		var sum A
		for i := 0; i < m.window.Len(); i++ {
			sum += A(m.window.At(i))
		}
		m.sum = sum
		return m.average()
	}

	sum := m.sum
	if m.window.Full() {
		var err error
		if sum, err = subChecked(sum, A(m.window.At(0))); err != nil {
			return 0, err
		}
	}
	sum, err := addChecked(sum, A(sample))
	if err != nil {
		return 0, err
	}
	m.window.Push(sample)
	m.sum = sum
	return m.average()
}

// Get returns the current average without feeding a sample. It returns
// ErrEmpty when nothing has been fed yet, an empty window has no average.
func (m *MovAvg[T, A, D]) Get() (T, error) {
	return m.average()
}

// Sum returns the accumulated sum of the contributing samples.
func (m *MovAvg[T, A, D]) Sum() A { return m.sum }

// Count returns the number of contributing samples, at most WindowSize().
func (m *MovAvg[T, A, D]) Count() int { return m.window.Len() }

// WindowSize returns the fixed window size.
func (m *MovAvg[T, A, D]) WindowSize() int { return m.window.Cap() }

// Reset restores the freshly constructed state, keeping the window storage.
func (m *MovAvg[T, A, D]) Reset() {
	m.window.Reset()
	m.sum = 0
}

func (m *MovAvg[T, A, D]) average() (T, error) {
	n := m.window.Len()
	if n == 0 {
		return 0, ErrEmpty
	}
	return T(m.div.Divide(m.sum, A(n))), nil
}
