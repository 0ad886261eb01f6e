package movavg

import (
	"golang.org/x/exp/constraints"

	"github.com/angas/movavg-go/fastmath"
)

// Divider computes num/den in the accumulator type. The strategy is a type
// parameter of MovAvg, so a precise and a fast instance are distinct types
// and a binary cannot switch modes at run time.
type Divider[A Number] interface {
	Divide(num, den A) A
}

// Precise divides with the platform's correctly rounded division. Integer
// accumulators truncate toward zero.
type Precise[A Number] struct{}

func (Precise[A]) Divide(num, den A) A { return num / den }

// Fast multiplies by an approximate reciprocal instead of dividing, trading
// accuracy for throughput. Only floating-point accumulators qualify. Results
// stay within the fastmath.Recip error bound of precise division but are not
// bit-identical to it.
type Fast[A constraints.Float] struct{}

func (Fast[A]) Divide(num, den A) A {
	return A(float64(num) * fastmath.Recip(float64(den)))
}
