package fastmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecip(t *testing.T) {
	values := []float64{
		1, 2, 3, 5, 7, 10, 100, 12345.6789,
		0.5, 0.1, 1.0 / 3.0, math.Pi, math.Sqrt2,
		1e-30, 1e30, 6.02214076e23,
	}
	for _, x := range values {
		assert.InEpsilon(t, 1/x, Recip(x), 1e-12, "Recip(%g)", x)
		assert.InEpsilon(t, 1/-x, Recip(-x), 1e-12, "Recip(%g)", -x)
	}
}

func TestRecipPowersOfTwo(t *testing.T) {
	for exp := -40; exp <= 40; exp++ {
		x := math.Ldexp(1, exp)
		assert.InEpsilon(t, 1/x, Recip(x), 1e-12, "Recip(2^%d)", exp)
	}
}

func TestRecipSmallIntegerDivisors(t *testing.T) {
	// Window sizes are the divisors the library feeds through Recip.
	for n := 1; n <= 1024; n++ {
		x := float64(n)
		assert.InEpsilon(t, 1/x, Recip(x), 1e-12, "Recip(%g)", x)
	}
}
