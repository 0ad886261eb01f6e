package movavg

import "golang.org/x/exp/constraints"

// Number is the capability set shared by sample and accumulator types.
type Number interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether A is a floating-point type, including named types.
// Integer division truncates 3/2 to 1, so the probe distinguishes the two
// halves of the Number type set. The branch is resolved per instantiation.
func isFloat[A Number]() bool {
	return A(3)/A(2) != A(1)
}

// addChecked returns a+b. Integer wrap-around is reported as ErrOverflow,
// floating-point addition cannot wrap and is returned as-is.
func addChecked[A Number](a, b A) (A, error) {
	sum := a + b
	if !isFloat[A]() && ((b > 0 && sum < a) || (b < 0 && sum > a)) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// subChecked returns a-b with the same overflow policy as addChecked.
func subChecked[A Number](a, b A) (A, error) {
	diff := a - b
	if !isFloat[A]() && ((b > 0 && diff > a) || (b < 0 && diff < a)) {
		return 0, ErrOverflow
	}
	return diff, nil
}
