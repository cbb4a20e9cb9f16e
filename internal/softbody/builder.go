package softbody

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BuildFromPoints constructs a network from a world-space point cloud:
// every point is inserted (exact repeats dedup to one mass point), then every
// unordered pair within connectDistance gets a spring.
//
// Pair connection is O(n^2). That is fine for the tens-to-low-hundreds of
// points voxel sampling produces at lane granularity, and rules out
// dense-resolution networks; pick the voxel size accordingly.
func BuildFromPoints(points []rl.Vector3, mass, stiffness, damping, connectDistance float32) *Network {
	n := NewNetwork()
	if len(points) == 0 {
		log.Printf("softbody: BuildFromPoints called with no points")
		return n
	}

	for _, p := range points {
		n.AddOrGetPoint(p, mass, false)
	}

	maxSq := connectDistance * connectDistance
	for i := 0; i < len(n.Points); i++ {
		for j := i + 1; j < len(n.Points); j++ {
			d := rl.Vector3Subtract(n.Points[j].Position, n.Points[i].Position)
			if rl.Vector3DotProduct(d, d) <= maxSq {
				n.AddSpring(i, j, stiffness, damping)
			}
		}
	}

	return n
}
