package draft

import "math"

// Matrix3 represents the linear part of an affine transformation as a 3x3
// matrix in row-major order:
//
//	| M11  M12  M13 |
//	| M21  M22  M23 |
//	| M31  M32  M33 |
//
// Entity transforms take a Matrix3 and a separate translation vector, so a
// Matrix3 on its own expresses rotation, scaling, shearing and reflection.
type Matrix3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// NewMatrix3 creates a matrix from its components in row-major order.
func NewMatrix3(m11, m12, m13, m21, m22, m23, m31, m32, m33 float64) Matrix3 {
	return Matrix3{
		M11: m11, M12: m12, M13: m13,
		M21: m21, M22: m22, M23: m23,
		M31: m31, M32: m32, M33: m33,
	}
}

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		M11: 1, M22: 1, M33: 1,
	}
}

// Scaling creates a scaling matrix with independent factors per axis.
func Scaling(x, y, z float64) Matrix3 {
	return Matrix3{
		M11: x, M22: y, M33: z,
	}
}

// RotationX creates a rotation matrix around the world X axis
// (angle in radians, counter-clockwise looking down the axis).
func RotationX(angle float64) Matrix3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3{
		M11: 1,
		M22: cos, M23: -sin,
		M32: sin, M33: cos,
	}
}

// RotationY creates a rotation matrix around the world Y axis.
func RotationY(angle float64) Matrix3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3{
		M11: cos, M13: sin,
		M22: 1,
		M31: -sin, M33: cos,
	}
}

// RotationZ creates a rotation matrix around the world Z axis.
func RotationZ(angle float64) Matrix3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3{
		M11: cos, M12: -sin,
		M21: sin, M22: cos,
		M33: 1,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	return Matrix3{
		M11: m.M11*other.M11 + m.M12*other.M21 + m.M13*other.M31,
		M12: m.M11*other.M12 + m.M12*other.M22 + m.M13*other.M32,
		M13: m.M11*other.M13 + m.M12*other.M23 + m.M13*other.M33,
		M21: m.M21*other.M11 + m.M22*other.M21 + m.M23*other.M31,
		M22: m.M21*other.M12 + m.M22*other.M22 + m.M23*other.M32,
		M23: m.M21*other.M13 + m.M22*other.M23 + m.M23*other.M33,
		M31: m.M31*other.M11 + m.M32*other.M21 + m.M33*other.M31,
		M32: m.M31*other.M12 + m.M32*other.M22 + m.M33*other.M32,
		M33: m.M31*other.M13 + m.M32*other.M23 + m.M33*other.M33,
	}
}

// MulVector applies the matrix to a vector (m * v).
func (m Matrix3) MulVector(v Vector3) Vector3 {
	return Vector3{
		X: m.M11*v.X + m.M12*v.Y + m.M13*v.Z,
		Y: m.M21*v.X + m.M22*v.Y + m.M23*v.Z,
		Z: m.M31*v.X + m.M32*v.Y + m.M33*v.Z,
	}
}

// Transpose returns the transposed matrix. For an orthonormal basis matrix
// the transpose is also the inverse.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		M11: m.M11, M12: m.M21, M13: m.M31,
		M21: m.M12, M22: m.M22, M23: m.M32,
		M31: m.M13, M32: m.M23, M33: m.M33,
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix3) Determinant() float64 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M12*(m.M21*m.M33-m.M23*m.M31) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix3) Invert() Matrix3 {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix3{
		M11: (m.M22*m.M33 - m.M23*m.M32) * invDet,
		M12: (m.M13*m.M32 - m.M12*m.M33) * invDet,
		M13: (m.M12*m.M23 - m.M13*m.M22) * invDet,
		M21: (m.M23*m.M31 - m.M21*m.M33) * invDet,
		M22: (m.M11*m.M33 - m.M13*m.M31) * invDet,
		M23: (m.M13*m.M21 - m.M11*m.M23) * invDet,
		M31: (m.M21*m.M32 - m.M22*m.M31) * invDet,
		M32: (m.M12*m.M31 - m.M11*m.M32) * invDet,
		M33: (m.M11*m.M22 - m.M12*m.M21) * invDet,
	}
}

// IsIdentity reports whether the matrix is exactly the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m == Identity()
}

// Approx reports whether two matrices are equal within threshold,
// component-wise.
func (m Matrix3) Approx(other Matrix3, threshold float64) bool {
	return math.Abs(m.M11-other.M11) < threshold &&
		math.Abs(m.M12-other.M12) < threshold &&
		math.Abs(m.M13-other.M13) < threshold &&
		math.Abs(m.M21-other.M21) < threshold &&
		math.Abs(m.M22-other.M22) < threshold &&
		math.Abs(m.M23-other.M23) < threshold &&
		math.Abs(m.M31-other.M31) < threshold &&
		math.Abs(m.M32-other.M32) < threshold &&
		math.Abs(m.M33-other.M33) < threshold
}

// arbitraryAxisBound is the threshold below which a normal counts as close
// to the world Z axis in the arbitrary axis construction.
const arbitraryAxisBound = 1.0 / 64.0

// ArbitraryAxis builds an orthonormal local basis from a normal vector and
// returns it as a matrix whose columns are the local X, Y and Z axes
// expressed in world coordinates. Multiplying a plane-local vector by the
// result lifts it into world space; multiplying by the transpose projects a
// world vector back into the local frame.
//
// The local X axis is chosen deterministically: the world Y axis crossed
// with the normal when the normal lies close to world Z (X and Y components
// both below 1/64), the world Z axis crossed with the normal otherwise.
// This is the standard construction used by drawing interchange formats, so
// bases derived from equal normals always agree.
func ArbitraryAxis(normal Vector3) Matrix3 {
	n := normal.Normalize()

	var ax Vector3
	if math.Abs(n.X) < arbitraryAxisBound && math.Abs(n.Y) < arbitraryAxisBound {
		ax = UnitY.Cross(n)
	} else {
		ax = UnitZ.Cross(n)
	}
	ax = ax.Normalize()
	ay := n.Cross(ax).Normalize()

	return Matrix3{
		M11: ax.X, M12: ay.X, M13: n.X,
		M21: ax.Y, M22: ay.Y, M23: n.Y,
		M31: ax.Z, M32: ay.Z, M33: n.Z,
	}
}
