package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// pinProfile is the lathed silhouette of a bowling pin: pairs of
// (height fraction, radius fraction), both relative to the pin height.
// Belly at about a quarter of the height, thin neck, slight head bulge.
var pinProfile = [][2]float32{
	{0.00, 0.055},
	{0.03, 0.095},
	{0.12, 0.140},
	{0.25, 0.160},
	{0.40, 0.130},
	{0.55, 0.082},
	{0.65, 0.062},
	{0.75, 0.075},
	{0.85, 0.072},
	{0.93, 0.048},
}

// GenPin revolves the pin profile around the Y axis. The base sits at Y=0,
// the apex at Y=height. segments is the number of lathe steps per ring.
func GenPin(height float32, segments int) *Mesh {
	m := &Mesh{}

	// Base center for the bottom cap fan
	m.Vertices = append(m.Vertices, rl.Vector3{})
	baseCenter := int32(0)

	stride := int32(segments + 1)
	for _, p := range pinProfile {
		y := p[0] * height
		r := p[1] * height
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			m.Vertices = append(m.Vertices, rl.Vector3{
				X: r * math32.Cos(theta),
				Y: y,
				Z: r * math32.Sin(theta),
			})
		}
	}

	// Apex closes the head
	apex := int32(len(m.Vertices))
	m.Vertices = append(m.Vertices, rl.Vector3{Y: height})

	firstRing := int32(1)

	// Bottom cap, wound to face down
	for s := int32(0); s < int32(segments); s++ {
		m.Indices = append(m.Indices, baseCenter, firstRing+s, firstRing+s+1)
	}

	// Side wall between consecutive rings
	for ring := 0; ring < len(pinProfile)-1; ring++ {
		row := firstRing + int32(ring)*stride
		next := row + stride
		for s := int32(0); s < int32(segments); s++ {
			i0 := row + s
			i1 := i0 + 1
			i2 := next + s
			i3 := i2 + 1
			m.Indices = append(m.Indices, i0, i1, i2)
			m.Indices = append(m.Indices, i1, i3, i2)
		}
	}

	// Head fan up to the apex
	lastRing := firstRing + int32(len(pinProfile)-1)*stride
	for s := int32(0); s < int32(segments); s++ {
		m.Indices = append(m.Indices, lastRing+s, lastRing+s+1, apex)
	}

	m.RecomputeNormals()
	return m
}

// PinRadius is the widest lathe radius for a pin of the given height, used
// for bounding-sphere and capsule extents.
func PinRadius(height float32) float32 {
	var max float32
	for _, p := range pinProfile {
		if p[1] > max {
			max = p[1]
		}
	}
	return max * height
}
