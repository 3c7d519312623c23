package gamemath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b Vector3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -2, 0.5}

	if got := a.Add(b); got != (Vector3{5, 0, 3.5}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vector3{-3, 4, 2.5}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vector3{2, 4, 6}) {
		t.Fatalf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 1.5 {
		t.Fatalf("Dot = %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector3{3, 0, 4}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > epsilon {
		t.Fatalf("normalized length = %v", n.Length())
	}
	if !almostEqual(n, Vector3{0.6, 0, 0.8}) {
		t.Fatalf("normalized = %v", n)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Fatalf("zero vector normalized to %v", got)
	}
}

func TestCrossOrthogonality(t *testing.T) {
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	if got := x.Cross(y); !almostEqual(got, Vector3{0, 0, 1}) {
		t.Fatalf("x cross y = %v", got)
	}

	a := Vector3{1, 2, 3}
	b := Vector3{-2, 1, 4}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > epsilon || math.Abs(c.Dot(b)) > epsilon {
		t.Fatal("cross product is not orthogonal to its operands")
	}
}

func TestHorizontal(t *testing.T) {
	if got := (Vector3{1, 5, -2}).Horizontal(); got != (Vector3{1, 0, -2}) {
		t.Fatalf("Horizontal = %v", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
