package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// meters compares on millimeter precision
type meters float64

func (m meters) ApproxEq(other meters) bool {
	return math.Abs(float64(m-other)) < 1e-3
}

func TestApproxEqScalar(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b float64
		want bool
	}{
		{"equal", 1.5, 1.5, true},
		{"below epsilon", 1, 1 + 5e-7, true},
		{"above epsilon", 1, 1 + 2e-6, false},
		{"negative zero", 0, math.Copysign(0, -1), true},
		{"infinity", math.Inf(1), math.Inf(1), true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), false},
		{"nan", math.NaN(), math.NaN(), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ApproxEq(tc.a, tc.b))
			require.Equal(t, tc.want, ApproxEq(tc.b, tc.a))
		})
	}
}

func TestApproxEqFloat32(t *testing.T) {
	require.True(t, ApproxEq[float32](2.2222223, 2.22222222))
	require.False(t, ApproxEq[float32](1, 1.0001))

	// tolerance is absolute, float32 neighbours from 16 up are too far apart
	require.True(t, ApproxEq(float32(4), math.Nextafter32(4, 5)))
	require.False(t, ApproxEq(float32(16), math.Nextafter32(16, 17)))
}

func TestApproxEqInteger(t *testing.T) {
	require.True(t, ApproxEq[int](3, 3))
	require.False(t, ApproxEq[int](3, 4))

	// no wrap around for unsigned values
	require.False(t, ApproxEq[uint32](3, 4))
	require.False(t, ApproxEq[uint8](0, 255))
}

func TestApproxEqDelegates(t *testing.T) {
	require.True(t, ApproxEq[meters](1, 1.0005))
	require.False(t, ApproxEq[meters](1, 1.002))

	a := IdentityMat4[meters]().Translate(1, 2, 3)
	b := IdentityMat4[meters]().Translate(1.0004, 2, 2.9996)
	require.True(t, a.ApproxEq(b))
	require.False(t, a.ApproxEq(IdentityMat4[meters]()))
}
