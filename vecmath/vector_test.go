package vecmath

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNormalizeLength(t *testing.T) {
	vectors := []Vector3{
		{1, 0, 0},
		{3, 4, 0},
		{-2, 7, 0.5},
		{1e-3, -1e-3, 1e-3},
		{1000, 2000, -3000},
	}

	for _, v := range vectors {
		if got := v.Normalize().Length(); math32.Abs(got-1) > epsilon {
			t.Errorf("Normalize(%v).Length() = %v, want 1", v, got)
		}
	}

	if got := (Vector2{3, 4}).Normalize().Length(); math32.Abs(got-1) > epsilon {
		t.Errorf("Vector2 Normalize().Length() = %v, want 1", got)
	}

	if got := (Vector4{1, 2, 3, 4}).Normalize().Length(); math32.Abs(got-1) > epsilon {
		t.Errorf("Vector4 Normalize().Length() = %v, want 1", got)
	}
}

func TestCrossAndDot(t *testing.T) {
	pairs := [][2]Vector3{
		{{1, 0, 0}, {0, 1, 0}},
		{{1, 2, 3}, {-4, 5, 6}},
		{{0.5, -0.25, 8}, {3, 3, -1}},
	}

	for _, pair := range pairs {
		var a, b Vector3 = pair[0], pair[1]

		if ab, ba := a.Cross(b), b.Cross(a); ab.Add(ba).Length() > epsilon {
			t.Errorf("Cross(%v, %v) = %v, want %v", a, b, ab, ba.Negate())
		}

		if ab, ba := a.Dot(b), b.Dot(a); ab != ba {
			t.Errorf("Dot(%v, %v) = %v, Dot(%v, %v) = %v", a, b, ab, b, a, ba)
		}

		// The cross product is perpendicular to both inputs.
		var cross Vector3 = a.Cross(b)

		if math32.Abs(cross.Dot(a)) > epsilon || math32.Abs(cross.Dot(b)) > epsilon {
			t.Errorf("Cross(%v, %v) = %v, not perpendicular", a, b, cross)
		}
	}

	if got := (Vector3{1, 0, 0}).Cross(Vector3{0, 1, 0}); got != (Vector3{0, 0, 1}) {
		t.Errorf("x cross y = %v, want z", got)
	}
}

func TestInterpolate(t *testing.T) {
	var a, b Vector3 = Vector3{0, 0, 0}, Vector3{2, 4, -8}

	tests := []struct {
		factor float32
		want   Vector3
	}{
		{0, a},
		{1, b},
		{0.5, Vector3{1, 2, -4}},
	}

	for _, test := range tests {
		if got := a.Interpolate(b, test.factor); got != test.want {
			t.Errorf("Interpolate(%v) = %v, want %v", test.factor, got, test.want)
		}
	}
}

func TestMinimizeMaximize(t *testing.T) {
	var a, b Vector3 = Vector3{1, 5, -2}, Vector3{3, -1, -2}

	if got, want := a.Minimize(b), (Vector3{1, -1, -2}); got != want {
		t.Errorf("Minimize() = %v, want %v", got, want)
	}

	if got, want := a.Maximize(b), (Vector3{3, 5, -2}); got != want {
		t.Errorf("Maximize() = %v, want %v", got, want)
	}
}

func TestVector4Transform(t *testing.T) {
	var v Vector4 = Vector4{1, 2, 3, 1}
	var m Matrix = Translation(1, 1, 1)

	if got, want := v.Transform(m), (Vector4{2, 3, 4, 1}); got != want {
		t.Errorf("Transform() = %v, want %v", got, want)
	}

	if got, want := (Vector3{1, 2, 3}).Vector4().Vector3(), (Vector3{1, 2, 3}); got != want {
		t.Errorf("Vector4().Vector3() = %v, want %v", got, want)
	}

	if got, want := (Vector2{1, 2}).Transform(m), (Vector2{2, 3}); got != want {
		t.Errorf("Vector2 Transform() = %v, want %v", got, want)
	}
}
