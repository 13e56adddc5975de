package vecmath

import (
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// Element offsets into a row-major Matrix.
const (
	M11, M12, M13, M14 = 0, 1, 2, 3
	M21, M22, M23, M24 = 4, 5, 6, 7
	M31, M32, M33, M34 = 8, 9, 10, 11
	M41, M42, M43, M44 = 12, 13, 14, 15
)

// Matrix is a 4x4 row-major matrix. Translation lives in the last row, so a
// transform chain reads left to right: model.Multiply(view).Multiply(projection).
type Matrix [16]float32

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translation(x, y, z float32) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotationX rotates by angle radians about the X axis.
func RotationX(angle float32) Matrix {
	var sin, cos float32 = math32.Sincos(angle)

	return Matrix{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotationY rotates by angle radians about the Y axis.
func RotationY(angle float32) Matrix {
	var sin, cos float32 = math32.Sincos(angle)

	return Matrix{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotationZ rotates by angle radians about the Z axis.
func RotationZ(angle float32) Matrix {
	var sin, cos float32 = math32.Sincos(angle)

	return Matrix{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Scaling(x, y, z float32) Matrix {
	return Matrix{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// PerspectiveFOV builds a right-handed projection. fov is the vertical field
// of view in radians. After the divide by w, z is 0 on the near plane and 1 on
// the far plane.
func PerspectiveFOV(fov, aspect, near, far float32) Matrix {
	var yScale float32 = 1 / math32.Tan(fov/2)
	var xScale float32 = yScale / aspect

	return Matrix{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, near * far / (near - far), 0,
	}
}

// LookAt builds a right-handed view matrix for a camera at eye facing at.
func LookAt(eye, at, up Vector3) Matrix {
	var zAxis Vector3 = eye.Sub(at).Normalize()
	var xAxis Vector3 = up.Cross(zAxis).Normalize()
	var yAxis Vector3 = zAxis.Cross(xAxis)

	return Matrix{
		xAxis.X, yAxis.X, zAxis.X, 0,
		xAxis.Y, yAxis.Y, zAxis.Y, 0,
		xAxis.Z, yAxis.Z, zAxis.Z, 0,
		-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1,
	}
}

// Multiply returns m1 * m2.
func (m1 Matrix) Multiply(m2 Matrix) Matrix {
	var result Matrix
	copy(result[:], vek32.Mat4Mul(m1[:], m2[:]))

	return result
}

func (m1 Matrix) MultiplyScalar(scalar float32) Matrix {
	var result Matrix

	for index := range m1 {
		result[index] = m1[index] * scalar
	}

	return result
}

func (m1 Matrix) Transpose() Matrix {
	var result Matrix

	for row := 0; row < 4; row++ {
		for column := 0; column < 4; column++ {
			result[column*4+row] = m1[row*4+column]
		}
	}

	return result
}

// adjugate returns the transposed cofactor matrix of m.
func (m Matrix) adjugate() Matrix {
	var a Matrix

	a[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	a[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	a[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	a[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	a[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	a[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	a[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	a[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	a[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	a[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	a[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	a[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	a[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	a[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	a[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	a[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	return a
}

func (m Matrix) Determinant() float32 {
	var a Matrix = m.adjugate()

	return m[0]*a[0] + m[1]*a[4] + m[2]*a[8] + m[3]*a[12]
}

// Inverse computes the adjugate divided by the determinant. The matrix must be
// non-singular; a zero determinant produces non-finite elements.
func (m Matrix) Inverse() Matrix {
	var a Matrix = m.adjugate()
	var determinant float32 = m[0]*a[0] + m[1]*a[4] + m[2]*a[8] + m[3]*a[12]

	return a.MultiplyScalar(1 / determinant)
}

// ApproxEqual reports whether every element differs by at most epsilon.
func (m1 Matrix) ApproxEqual(m2 Matrix, epsilon float32) bool {
	for index := range m1 {
		if math32.Abs(m1[index]-m2[index]) > epsilon {
			return false
		}
	}

	return true
}
