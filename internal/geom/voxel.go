package geom

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Voxelize samples the solid interior of a closed mesh on a regular grid and
// returns the cell centers that fall inside. The inside test casts one ray
// per cell and counts triangle crossings: odd means inside. The ray direction
// is tilted slightly off the X axis so grid-aligned geometry doesn't produce
// exact edge hits that would double count.
//
// Cost is O(cells * triangles), paid once at body construction.
func Voxelize(m *Mesh, cell float32) []rl.Vector3 {
	if m == nil || m.TriangleCount() == 0 {
		log.Printf("geom: Voxelize called without mesh data")
		return nil
	}
	if cell <= 0 {
		log.Printf("geom: Voxelize called with non-positive cell size %v", cell)
		return nil
	}

	min, max := m.Bounds()
	rayDir := rl.Vector3Normalize(rl.Vector3{X: 1, Y: 0.0173, Z: 0.0311})

	var points []rl.Vector3
	for x := min.X + cell/2; x <= max.X; x += cell {
		for y := min.Y + cell/2; y <= max.Y; y += cell {
			for z := min.Z + cell/2; z <= max.Z; z += cell {
				p := rl.Vector3{X: x, Y: y, Z: z}
				if insideMesh(m, p, rayDir) {
					points = append(points, p)
				}
			}
		}
	}
	return points
}

func insideMesh(m *Mesh, p, rayDir rl.Vector3) bool {
	crossings := 0
	for i := 0; i < m.TriangleCount(); i++ {
		v0, v1, v2 := m.Triangle(i)
		if _, hit := rayTriangle(p, rayDir, v0, v1, v2); hit {
			crossings++
		}
	}
	return crossings%2 == 1
}

// rayTriangle is the Moller-Trumbore intersection test. Returns the ray
// parameter t for hits strictly in front of the origin.
func rayTriangle(orig, dir, v0, v1, v2 rl.Vector3) (float32, bool) {
	const epsilon = 1e-7

	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)

	h := rl.Vector3CrossProduct(dir, edge2)
	a := rl.Vector3DotProduct(edge1, h)
	if a > -epsilon && a < epsilon {
		return 0, false // ray parallel to triangle plane
	}

	f := 1 / a
	s := rl.Vector3Subtract(orig, v0)
	u := f * rl.Vector3DotProduct(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := rl.Vector3CrossProduct(s, edge1)
	v := f * rl.Vector3DotProduct(dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * rl.Vector3DotProduct(edge2, q)
	if t <= epsilon {
		return 0, false
	}
	return t, true
}
