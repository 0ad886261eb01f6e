// Package fastmath provides approximate floating-point primitives for the
// fast computation mode.
package fastmath

import "math"

// Magic constant for the exponent-negation seed. Subtracting the bit pattern
// of x from it yields a first reciprocal approximation with a relative error
// below 10%.
const recipMagic = 0x7FDE6238502484BA

// Recip approximates 1/x with a reciprocal seed refined by four
// Newton-Raphson steps. The relative error against exact division stays
// below 1e-12 for normal, finite, non-zero x whose reciprocal is itself
// normal. Outside that range the result is unspecified.
func Recip(x float64) float64 {
	bits := math.Float64bits(x)
	sign := bits & (1 << 63)
	bits &^= 1 << 63

	ax := math.Float64frombits(bits)
	r := math.Float64frombits(recipMagic - bits)

	// Each step roughly squares the relative error.
	r = r * (2 - ax*r)
	r = r * (2 - ax*r)
	r = r * (2 - ax*r)
	r = r * (2 - ax*r)

	return math.Float64frombits(math.Float64bits(r) | sign)
}
