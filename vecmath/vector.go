// Package vecmath holds the small float32 vector and matrix kernel used by the
// rasterizer. Vectors are transformed as row vectors (v * M).
package vecmath

import (
	"github.com/chewxy/math32"
)

type Vector2 struct {
	X, Y float32
}

type Vector3 struct {
	X, Y, Z float32
}

type Vector4 struct {
	X, Y, Z, W float32
}

func (v1 Vector2) Add(v2 Vector2) Vector2 { return Vector2{v1.X + v2.X, v1.Y + v2.Y} }
func (v1 Vector2) Sub(v2 Vector2) Vector2 { return Vector2{v1.X - v2.X, v1.Y - v2.Y} }
func (v1 Vector2) Scale(s float32) Vector2 { return Vector2{v1.X * s, v1.Y * s} }

func (v1 Vector2) Dot(v2 Vector2) float32 {
	return v1.X*v2.X + v1.Y*v2.Y
}

func (v1 Vector2) LengthSq() float32 { return v1.Dot(v1) }
func (v1 Vector2) Length() float32   { return math32.Sqrt(v1.LengthSq()) }

// Normalize divides by the length. A zero vector yields NaN components.
func (v1 Vector2) Normalize() Vector2 {
	var length float32 = v1.Length()

	return Vector2{v1.X / length, v1.Y / length}
}

func (v1 Vector2) Interpolate(v2 Vector2, factor float32) Vector2 {
	return v1.Add(v2.Sub(v1).Scale(factor))
}

func (v1 Vector2) Minimize(v2 Vector2) Vector2 {
	return Vector2{min(v1.X, v2.X), min(v1.Y, v2.Y)}
}

func (v1 Vector2) Maximize(v2 Vector2) Vector2 {
	return Vector2{max(v1.X, v2.X), max(v1.Y, v2.Y)}
}

// Transform treats v1 as the point (x, y, 0, 1).
func (v1 Vector2) Transform(m Matrix) Vector2 {
	return Vector2{
		v1.X*m[M11] + v1.Y*m[M21] + m[M41],
		v1.X*m[M12] + v1.Y*m[M22] + m[M42],
	}
}

func (v1 Vector3) Add(v2 Vector3) Vector3 { return Vector3{v1.X + v2.X, v1.Y + v2.Y, v1.Z + v2.Z} }
func (v1 Vector3) Sub(v2 Vector3) Vector3 { return Vector3{v1.X - v2.X, v1.Y - v2.Y, v1.Z - v2.Z} }
func (v1 Vector3) Scale(s float32) Vector3 { return Vector3{v1.X * s, v1.Y * s, v1.Z * s} }
func (v1 Vector3) Negate() Vector3         { return Vector3{-v1.X, -v1.Y, -v1.Z} }

func (v1 Vector3) Dot(v2 Vector3) float32 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

func (v1 Vector3) Cross(v2 Vector3) Vector3 {
	return Vector3{
		v1.Y*v2.Z - v1.Z*v2.Y,
		v1.Z*v2.X - v1.X*v2.Z,
		v1.X*v2.Y - v1.Y*v2.X,
	}
}

func (v1 Vector3) LengthSq() float32 { return v1.Dot(v1) }
func (v1 Vector3) Length() float32   { return math32.Sqrt(v1.LengthSq()) }

// Normalize divides by the length. A zero vector yields NaN components.
func (v1 Vector3) Normalize() Vector3 {
	var length float32 = v1.Length()

	return Vector3{v1.X / length, v1.Y / length, v1.Z / length}
}

func (v1 Vector3) Interpolate(v2 Vector3, factor float32) Vector3 {
	return v1.Add(v2.Sub(v1).Scale(factor))
}

func (v1 Vector3) Minimize(v2 Vector3) Vector3 {
	return Vector3{min(v1.X, v2.X), min(v1.Y, v2.Y), min(v1.Z, v2.Z)}
}

func (v1 Vector3) Maximize(v2 Vector3) Vector3 {
	return Vector3{max(v1.X, v2.X), max(v1.Y, v2.Y), max(v1.Z, v2.Z)}
}

// Transform treats v1 as the point (x, y, z, 1) and drops the resulting w.
func (v1 Vector3) Transform(m Matrix) Vector3 {
	return Vector3{
		v1.X*m[M11] + v1.Y*m[M21] + v1.Z*m[M31] + m[M41],
		v1.X*m[M12] + v1.Y*m[M22] + v1.Z*m[M32] + m[M42],
		v1.X*m[M13] + v1.Y*m[M23] + v1.Z*m[M33] + m[M43],
	}
}

// TransformNormal treats v1 as the direction (x, y, z, 0), ignoring translation.
func (v1 Vector3) TransformNormal(m Matrix) Vector3 {
	return Vector3{
		v1.X*m[M11] + v1.Y*m[M21] + v1.Z*m[M31],
		v1.X*m[M12] + v1.Y*m[M22] + v1.Z*m[M32],
		v1.X*m[M13] + v1.Y*m[M23] + v1.Z*m[M33],
	}
}

// Vector4 returns the homogeneous point (x, y, z, 1).
func (v1 Vector3) Vector4() Vector4 {
	return Vector4{v1.X, v1.Y, v1.Z, 1}
}

func (v1 Vector4) Add(v2 Vector4) Vector4 {
	return Vector4{v1.X + v2.X, v1.Y + v2.Y, v1.Z + v2.Z, v1.W + v2.W}
}

func (v1 Vector4) Sub(v2 Vector4) Vector4 {
	return Vector4{v1.X - v2.X, v1.Y - v2.Y, v1.Z - v2.Z, v1.W - v2.W}
}

func (v1 Vector4) Scale(s float32) Vector4 {
	return Vector4{v1.X * s, v1.Y * s, v1.Z * s, v1.W * s}
}

func (v1 Vector4) Dot(v2 Vector4) float32 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z + v1.W*v2.W
}

func (v1 Vector4) LengthSq() float32 { return v1.Dot(v1) }
func (v1 Vector4) Length() float32   { return math32.Sqrt(v1.LengthSq()) }

// Normalize divides all four components by the length.
func (v1 Vector4) Normalize() Vector4 {
	return v1.Scale(1 / v1.Length())
}

func (v1 Vector4) Interpolate(v2 Vector4, factor float32) Vector4 {
	return v1.Add(v2.Sub(v1).Scale(factor))
}

func (v1 Vector4) Minimize(v2 Vector4) Vector4 {
	return Vector4{min(v1.X, v2.X), min(v1.Y, v2.Y), min(v1.Z, v2.Z), min(v1.W, v2.W)}
}

func (v1 Vector4) Maximize(v2 Vector4) Vector4 {
	return Vector4{max(v1.X, v2.X), max(v1.Y, v2.Y), max(v1.Z, v2.Z), max(v1.W, v2.W)}
}

func (v1 Vector4) Transform(m Matrix) Vector4 {
	return Vector4{
		v1.X*m[M11] + v1.Y*m[M21] + v1.Z*m[M31] + v1.W*m[M41],
		v1.X*m[M12] + v1.Y*m[M22] + v1.Z*m[M32] + v1.W*m[M42],
		v1.X*m[M13] + v1.Y*m[M23] + v1.Z*m[M33] + v1.W*m[M43],
		v1.X*m[M14] + v1.Y*m[M24] + v1.Z*m[M34] + v1.W*m[M44],
	}
}

// Vector3 drops w without dividing.
func (v1 Vector4) Vector3() Vector3 {
	return Vector3{v1.X, v1.Y, v1.Z}
}
