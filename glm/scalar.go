package glm

import "golang.org/x/exp/constraints"

// Epsilon is the tolerance ApproxEq uses for built-in scalar types.
const Epsilon = 1e-6

// Scalar is the set of element types a Mat4 can hold. Every member has a zero
// value, a one, converts from integer constants and supports + - * / and
// unary minus.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// ApproxEqualer can be implemented by a named scalar type to take over the
// comparison ApproxEq performs for its values.
type ApproxEqualer[T any] interface {
	ApproxEq(other T) bool
}

// ApproxEq reports whether a and b differ by less than Epsilon, unless T
// brings its own comparison by implementing ApproxEqualer. Integer values
// thereby compare exactly. NaN never equals anything.
//
// The tolerance is absolute for both float widths. A float32 of 16 or more is
// spaced wider than Epsilon, so such values only compare equal when they are
// identical. Matrices in pixel space should be compared with a named scalar
// type that implements ApproxEqualer.
func ApproxEq[T Scalar](a, b T) bool {
	if eq, ok := any(a).(ApproxEqualer[T]); ok {
		return eq.ApproxEq(b)
	}

	if a == b {
		return true
	}

	// order first so unsigned values do not wrap
	diff := a - b
	if b > a {
		diff = b - a
	}

	return float64(diff) < Epsilon
}
