package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle is a world-space triangle handed to the narrow phase.
type Triangle struct {
	V0, V1, V2 rl.Vector3
}

// ClosestPointOnTriangle finds the closest point on the filled triangle abc
// to point p, via barycentric region tests: vertex regions first, then edge
// regions, then the face. Vertex winding does not matter. Degenerate
// (zero-area) triangles resolve through the vertex/edge branches and the
// face fallback, never dividing by zero.
func ClosestPointOnTriangle(p, a, b, c rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	ap := rl.Vector3Subtract(p, a)

	// Vertex region outside A
	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a // barycentric (1,0,0)
	}

	// Vertex region outside B
	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b // barycentric (0,1,0)
	}

	// Edge region AB
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return rl.Vector3Add(a, rl.Vector3Scale(ab, v)) // barycentric (1-v,v,0)
	}

	// Vertex region outside C
	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c // barycentric (0,0,1)
	}

	// Edge region AC
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return rl.Vector3Add(a, rl.Vector3Scale(ac, w)) // barycentric (1-w,0,w)
	}

	// Edge region BC
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w)) // barycentric (0,1-w,w)
	}

	// Face region. For an exactly degenerate triangle every region test above
	// has already returned; guard the denominator anyway so collinear input
	// can never produce NaN.
	sum := va + vb + vc
	if sum == 0 {
		return a
	}
	denom := 1.0 / sum
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}

// ClosestPointOnSegment projects p onto the segment ab, clamped to the ends.
// A zero-length segment returns a.
func ClosestPointOnSegment(p, a, b rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq == 0 {
		return a
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}
