package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Length(rl.Vector3Subtract(a, b)) <= eps
}

func TestClosestPointFaceRegion(t *testing.T) {
	a := rl.Vector3{}
	b := rl.Vector3{X: 4}
	c := rl.Vector3{Y: 4}

	// Above an interior point: closest is the straight-down projection
	p := rl.Vector3{X: 1, Y: 1, Z: 3}
	got := ClosestPointOnTriangle(p, a, b, c)
	want := rl.Vector3{X: 1, Y: 1}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("Face region: want %v, got %v", want, got)
	}
}

func TestClosestPointVertexRegions(t *testing.T) {
	a := rl.Vector3{}
	b := rl.Vector3{X: 2}
	c := rl.Vector3{Y: 2}

	cases := []struct {
		p, want rl.Vector3
	}{
		{rl.Vector3{X: -1, Y: -1}, a},
		{rl.Vector3{X: 5, Y: -2}, b},
		{rl.Vector3{X: -2, Y: 5}, c},
	}
	for i, tc := range cases {
		got := ClosestPointOnTriangle(tc.p, a, b, c)
		if !vecNear(got, tc.want, 1e-5) {
			t.Errorf("Vertex region %d: want %v, got %v", i, tc.want, got)
		}
	}
}

func TestClosestPointEdgeRegion(t *testing.T) {
	a := rl.Vector3{}
	b := rl.Vector3{X: 2}
	c := rl.Vector3{Y: 2}

	// Below the AB edge: projects onto the edge, Y clamped away
	p := rl.Vector3{X: 1, Y: -3}
	got := ClosestPointOnTriangle(p, a, b, c)
	want := rl.Vector3{X: 1}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("Edge region: want %v, got %v", want, got)
	}
}

func TestClosestPointWindingIndependent(t *testing.T) {
	a := rl.Vector3{}
	b := rl.Vector3{X: 3}
	c := rl.Vector3{Z: 3}
	p := rl.Vector3{X: 1, Y: 2, Z: 1}

	fwd := ClosestPointOnTriangle(p, a, b, c)
	rev := ClosestPointOnTriangle(p, a, c, b)
	if !vecNear(fwd, rev, 1e-5) {
		t.Errorf("Winding changed the result: %v vs %v", fwd, rev)
	}
}

func TestClosestPointDegenerateTriangle(t *testing.T) {
	// All three vertices collinear, and one fully collapsed
	cases := [][3]rl.Vector3{
		{{}, {X: 1}, {X: 2}},
		{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}},
	}
	p := rl.Vector3{X: 0.5, Y: 2}
	for i, tri := range cases {
		got := ClosestPointOnTriangle(p, tri[0], tri[1], tri[2])
		if math32.IsNaN(got.X) || math32.IsNaN(got.Y) || math32.IsNaN(got.Z) {
			t.Errorf("Degenerate triangle %d produced NaN: %v", i, got)
		}
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := rl.Vector3{}
	b := rl.Vector3{Y: 2}

	mid := ClosestPointOnSegment(rl.Vector3{X: 3, Y: 1}, a, b)
	if !vecNear(mid, rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("Interior projection: got %v", mid)
	}
	if got := ClosestPointOnSegment(rl.Vector3{Y: -5}, a, b); !vecNear(got, a, 1e-5) {
		t.Errorf("Clamp to start: got %v", got)
	}
	if got := ClosestPointOnSegment(rl.Vector3{Y: 5}, a, b); !vecNear(got, b, 1e-5) {
		t.Errorf("Clamp to end: got %v", got)
	}
	if got := ClosestPointOnSegment(rl.Vector3{X: 1}, a, a); !vecNear(got, a, 1e-5) {
		t.Errorf("Zero-length segment: got %v", got)
	}
}
