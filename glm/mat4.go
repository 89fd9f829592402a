// Package glm implements generic 4x4 matrices for homogeneous transforms.
//
// Matrices are row-major and follow the row-vector convention: a point is
// transformed as p' = p * M, so the translation lives in the fourth row.
// All operations are pure and return new values.
package glm

// Mat4 is a 4x4 matrix. Field Mrc holds row r, column c.
type Mat4[T Scalar] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// NewMat4 builds a matrix from 16 values given in row-major reading order.
func NewMat4[T Scalar](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 T,
) Mat4[T] {
	return Mat4[T]{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

func Mat4Of[T Scalar](rows [4][4]T) Mat4[T] {
	return Mat4[T]{
		rows[0][0], rows[0][1], rows[0][2], rows[0][3],
		rows[1][0], rows[1][1], rows[1][2], rows[1][3],
		rows[2][0], rows[2][1], rows[2][2], rows[2][3],
		rows[3][0], rows[3][1], rows[3][2], rows[3][3],
	}
}

func IdentityMat4[T Scalar]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TranslationMat4[T Scalar](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ScaleMat4[T Scalar](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an OpenGL style orthographic projection that maps the box
// [left,right] x [bottom,top] x [near,far] onto the [-1,1] clip cube.
//
// The bounds are not validated. With left == right, bottom == top or
// near == far a float matrix will contain infinities or NaNs, and an integer
// matrix panics with a division by zero.
func Ortho[T Scalar](left, right, bottom, top, near, far T) Mat4[T] {
	tx := -((right + left) / (right - left))
	ty := -((top + bottom) / (top - bottom))
	tz := -((far + near) / (far - near))

	return Mat4[T]{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -(2 / (far - near)), 0,
		tx, ty, tz, 1,
	}
}

// Mul returns the matrix product rhs * lhs. Transforming a point with the
// result applies rhs first and lhs after it, so rhs acts in the local frame
// of lhs, the way model matrices are usually built up.
func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		rhs.M11*lhs.M11 + rhs.M12*lhs.M21 + rhs.M13*lhs.M31 + rhs.M14*lhs.M41,
		rhs.M11*lhs.M12 + rhs.M12*lhs.M22 + rhs.M13*lhs.M32 + rhs.M14*lhs.M42,
		rhs.M11*lhs.M13 + rhs.M12*lhs.M23 + rhs.M13*lhs.M33 + rhs.M14*lhs.M43,
		rhs.M11*lhs.M14 + rhs.M12*lhs.M24 + rhs.M13*lhs.M34 + rhs.M14*lhs.M44,

		rhs.M21*lhs.M11 + rhs.M22*lhs.M21 + rhs.M23*lhs.M31 + rhs.M24*lhs.M41,
		rhs.M21*lhs.M12 + rhs.M22*lhs.M22 + rhs.M23*lhs.M32 + rhs.M24*lhs.M42,
		rhs.M21*lhs.M13 + rhs.M22*lhs.M23 + rhs.M23*lhs.M33 + rhs.M24*lhs.M43,
		rhs.M21*lhs.M14 + rhs.M22*lhs.M24 + rhs.M23*lhs.M34 + rhs.M24*lhs.M44,

		rhs.M31*lhs.M11 + rhs.M32*lhs.M21 + rhs.M33*lhs.M31 + rhs.M34*lhs.M41,
		rhs.M31*lhs.M12 + rhs.M32*lhs.M22 + rhs.M33*lhs.M32 + rhs.M34*lhs.M42,
		rhs.M31*lhs.M13 + rhs.M32*lhs.M23 + rhs.M33*lhs.M33 + rhs.M34*lhs.M43,
		rhs.M31*lhs.M14 + rhs.M32*lhs.M24 + rhs.M33*lhs.M34 + rhs.M34*lhs.M44,

		rhs.M41*lhs.M11 + rhs.M42*lhs.M21 + rhs.M43*lhs.M31 + rhs.M44*lhs.M41,
		rhs.M41*lhs.M12 + rhs.M42*lhs.M22 + rhs.M43*lhs.M32 + rhs.M44*lhs.M42,
		rhs.M41*lhs.M13 + rhs.M42*lhs.M23 + rhs.M43*lhs.M33 + rhs.M44*lhs.M43,
		rhs.M41*lhs.M14 + rhs.M42*lhs.M24 + rhs.M43*lhs.M34 + rhs.M44*lhs.M44,
	}
}

func (lhs Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{
		lhs.M11 * s, lhs.M12 * s, lhs.M13 * s, lhs.M14 * s,
		lhs.M21 * s, lhs.M22 * s, lhs.M23 * s, lhs.M24 * s,
		lhs.M31 * s, lhs.M32 * s, lhs.M33 * s, lhs.M34 * s,
		lhs.M41 * s, lhs.M42 * s, lhs.M43 * s, lhs.M44 * s,
	}
}

// Scale multiplies the first three diagonal entries by x, y and z and leaves
// everything else as is. This only matches lhs.Mul(ScaleMat4(x, y, z)) when
// the first three rows carry nothing off the diagonal. Row four is never
// touched by either.
func (lhs Mat4[T]) Scale(x, y, z T) Mat4[T] {
	r := lhs
	r.M11 *= x
	r.M22 *= y
	r.M33 *= z
	return r
}

// Translate composes lhs with a translation by (x, y, z) given in the local
// frame of lhs.
func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4[T](x, y, z))
}

func (lhs Mat4[T]) ApproxEq(rhs Mat4[T]) bool {
	a, b := lhs.ToArray(), rhs.ToArray()
	for idx := range a {
		if !ApproxEq(a[idx], b[idx]) {
			return false
		}
	}

	return true
}

func (lhs Mat4[T]) ToArray() [16]T {
	return [16]T{
		lhs.M11, lhs.M12, lhs.M13, lhs.M14,
		lhs.M21, lhs.M22, lhs.M23, lhs.M24,
		lhs.M31, lhs.M32, lhs.M33, lhs.M34,
		lhs.M41, lhs.M42, lhs.M43, lhs.M44,
	}
}

// Row returns row i, counting from zero.
func (lhs Mat4[T]) Row(i int) [4]T {
	values := lhs.ToArray()
	return [4]T(values[i*4 : i*4+4])
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}
