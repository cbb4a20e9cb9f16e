package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GenSphere builds a UV sphere of the given radius centered on the origin.
// rings is the latitude subdivision, slices the longitude subdivision; the
// seam column is duplicated so the index grid stays regular.
func GenSphere(radius float32, rings, slices int) *Mesh {
	m := &Mesh{}

	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings) // 0 at north pole
		y := radius * math32.Cos(phi)
		ringRadius := radius * math32.Sin(phi)

		for s := 0; s <= slices; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(slices)
			m.Vertices = append(m.Vertices, rl.Vector3{
				X: ringRadius * math32.Cos(theta),
				Y: y,
				Z: ringRadius * math32.Sin(theta),
			})
		}
	}

	stride := int32(slices + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < slices; s++ {
			i0 := int32(r)*stride + int32(s)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1

			m.Indices = append(m.Indices, i0, i2, i1)
			m.Indices = append(m.Indices, i1, i2, i3)
		}
	}

	m.RecomputeNormals()
	return m
}
