package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoundingSphere is a conservative bound derived from a body's extents.
type BoundingSphere struct {
	Center rl.Vector3
	Radius float32
}

// Overlaps reports whether two bounding spheres intersect.
func (s BoundingSphere) Overlaps(o BoundingSphere) bool {
	d := rl.Vector3Subtract(o.Center, s.Center)
	sum := s.Radius + o.Radius
	return rl.Vector3DotProduct(d, d) <= sum*sum
}

// CapsuleOverlap is the coarse silhouette gate: does a sphere intersect the
// vertical capsule from base to top with the given radius? A zero-length
// axis degenerates to a plain sphere test.
func CapsuleOverlap(center rl.Vector3, radius float32, base, top rl.Vector3, capRadius float32) bool {
	closest := ClosestPointOnSegment(center, base, top)
	d := rl.Vector3Subtract(center, closest)
	sum := radius + capRadius
	return rl.Vector3DotProduct(d, d) <= sum*sum
}

// Detector runs sphere-vs-triangle-mesh queries. NarrowTests counts every
// triangle visited, so tests can prove the broad phase rejected a pair
// without the narrow phase running.
type Detector struct {
	NarrowTests int
}

// SphereVsMesh tests a query sphere against world-space triangles: closest
// point per triangle, intersect when the squared distance is within the
// squared radius. Short-circuits on the first intersecting triangle and
// returns its closest point as the contact.
//
// Linear in triangle count; fine for one moving body against a handful of
// candidates per step, not built for dense scenes (no spatial index).
func (d *Detector) SphereVsMesh(center rl.Vector3, radius float32, tris []Triangle) (bool, rl.Vector3) {
	radiusSq := radius * radius
	for i := range tris {
		d.NarrowTests++
		closest := ClosestPointOnTriangle(center, tris[i].V0, tris[i].V1, tris[i].V2)
		diff := rl.Vector3Subtract(center, closest)
		if rl.Vector3DotProduct(diff, diff) <= radiusSq {
			return true, closest
		}
	}
	return false, rl.Vector3{}
}
