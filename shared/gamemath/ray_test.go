package gamemath

import (
	"math"
	"testing"
)

func TestRayTest(t *testing.T) {
	origin := Vector3{0, 2, 0}
	forward := Vector3{0, 0, -1}

	cases := []struct {
		name    string
		center  Vector3
		radius  float64
		wantHit bool
	}{
		{"dead center", Vector3{0, 2, -10}, 1, true},
		{"graze inside radius", Vector3{0.9, 2, -10}, 1, true},
		{"just outside radius", Vector3{1.1, 2, -10}, 1, false},
		{"behind the origin", Vector3{0, 2, 10}, 1, false},
		{"beside the origin", Vector3{5, 2, 0}, 1, false},
		{"large target off axis", Vector3{2, 2, -10}, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, hit := RayTest(origin, forward, tc.center, tc.radius)
			if hit != tc.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tc.wantHit)
			}
		})
	}
}

func TestRayTestProjectionDistance(t *testing.T) {
	origin := Vector3{0, 2, 0}
	forward := Vector3{0, 0, -1}

	proj, hit := RayTest(origin, forward, Vector3{0.5, 2, -7}, 1)
	if !hit {
		t.Fatal("expected a hit")
	}
	if math.Abs(proj-7) > epsilon {
		t.Fatalf("projection = %v, want 7", proj)
	}
}
