package glm

import (
	"golang.org/x/mobile/exp/f32"
)

// ToF32 converts to the column-vector layout of f32.Mat4, which is the
// transpose of ours. Composition order is kept: a.Mul(b).ToF32() equals the
// f32 product of a.ToF32() and b.ToF32().
func (lhs Mat4[T]) ToF32() f32.Mat4 {
	return f32.Mat4{
		{float32(lhs.M11), float32(lhs.M21), float32(lhs.M31), float32(lhs.M41)},
		{float32(lhs.M12), float32(lhs.M22), float32(lhs.M32), float32(lhs.M42)},
		{float32(lhs.M13), float32(lhs.M23), float32(lhs.M33), float32(lhs.M43)},
		{float32(lhs.M14), float32(lhs.M24), float32(lhs.M34), float32(lhs.M44)},
	}
}

func Mat4FromF32[T Scalar](m *f32.Mat4) Mat4[T] {
	return Mat4[T]{
		T(m[0][0]), T(m[1][0]), T(m[2][0]), T(m[3][0]),
		T(m[0][1]), T(m[1][1]), T(m[2][1]), T(m[3][1]),
		T(m[0][2]), T(m[1][2]), T(m[2][2]), T(m[3][2]),
		T(m[0][3]), T(m[1][3]), T(m[2][3]), T(m[3][3]),
	}
}
