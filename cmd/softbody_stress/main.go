// Stress test for the spring network integrator and the collision detector
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/geom"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/physics"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/softbody"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	fmt.Println("Spring network integration:")
	for _, count := range []int{64, 256, 1024, 4096} {
		testNetwork(count)
	}

	fmt.Println("\nSphere-vs-mesh narrow phase:")
	for _, density := range []struct{ rings, slices int }{{8, 12}, {16, 24}, {32, 48}} {
		testDetector(density.rings, density.slices)
	}
}

func testNetwork(count int) {
	rand.Seed(42) // Consistent results

	// Random cloud in a unit cube; connect distance tuned so every point
	// finds a few neighbors without the spring count exploding
	points := make([]rl.Vector3, count)
	for i := range points {
		points[i] = rl.Vector3{
			X: rand.Float32(),
			Y: rand.Float32(),
			Z: rand.Float32(),
		}
	}
	connect := 1.6 / float32(cubeRoot(count))

	buildStart := time.Now()
	net := softbody.BuildFromPoints(points, 1, 50, 2, connect)
	buildTime := time.Since(buildStart)

	const iterations = 100
	start := time.Now()
	for i := 0; i < iterations; i++ {
		net.Simulate(1.0 / 120.0)
	}
	simTime := time.Since(start) / iterations

	fmt.Printf("%5d points, %6d springs: build %8s, step %8s\n",
		len(net.Points), len(net.Springs), buildTime.Round(time.Microsecond), simTime.Round(time.Microsecond))
}

func testDetector(rings, slices int) {
	mesh := geom.GenSphere(1, rings, slices)
	tris := make([]physics.Triangle, mesh.TriangleCount())
	for i := range tris {
		tris[i].V0, tris[i].V1, tris[i].V2 = mesh.Triangle(i)
	}

	// Query sphere grazing the surface: no early out, every triangle tested
	center := rl.Vector3{X: 2.5}
	var det physics.Detector

	const iterations = 1000
	start := time.Now()
	for i := 0; i < iterations; i++ {
		det.SphereVsMesh(center, 0.1, tris)
	}
	elapsed := time.Since(start) / iterations

	fmt.Printf("%5d triangles: query %8s (%d tests)\n",
		len(tris), elapsed.Round(time.Nanosecond), det.NarrowTests/iterations)
}

func cubeRoot(n int) int {
	r := 1
	for r*r*r < n {
		r++
	}
	return r
}
