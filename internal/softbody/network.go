package softbody

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MassPoint is one simulated particle. Points are owned exclusively by their
// Network: created during the build phase, mutated every step, never removed
// individually (the whole network is rebuilt instead).
type MassPoint struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Force    rl.Vector3 // accumulated per step, zeroed at the start of Simulate
	Mass     float32
	Fixed    bool // fixed points receive no force, velocity or position updates
}

// Spring is a damped linear constraint between two points of the same network.
// RestLength is the distance between the points at the moment the spring was
// created and is never recomputed.
type Spring struct {
	A, B       int
	RestLength float32
	Stiffness  float32
	Damping    float32
}

// dedupCell quantizes a position for point deduplication. Coincident points
// from slightly different transforms still merge as long as they land within
// the same cell (~1e-3 units).
const dedupCellSize = 1e-3

type dedupKey struct {
	X, Y, Z int32
}

func quantize(pos rl.Vector3) dedupKey {
	return dedupKey{
		X: int32(math32.Floor(pos.X/dedupCellSize + 0.5)),
		Y: int32(math32.Floor(pos.Y/dedupCellSize + 0.5)),
		Z: int32(math32.Floor(pos.Z/dedupCellSize + 0.5)),
	}
}

// Network is the complete mass-spring state of one deformable body.
type Network struct {
	Points  []MassPoint
	Springs []Spring
	lookup  map[dedupKey]int
}

func NewNetwork() *Network {
	return &Network{
		Points:  make([]MassPoint, 0),
		Springs: make([]Spring, 0),
		lookup:  make(map[dedupKey]int),
	}
}

// AddOrGetPoint returns the index of an existing point at (or within the
// dedup cell of) pos, or appends a new point with zero velocity and force.
func (n *Network) AddOrGetPoint(pos rl.Vector3, mass float32, fixed bool) int {
	key := quantize(pos)
	if idx, ok := n.lookup[key]; ok {
		return idx
	}
	idx := len(n.Points)
	n.Points = append(n.Points, MassPoint{
		Position: pos,
		Mass:     mass,
		Fixed:    fixed,
	})
	n.lookup[key] = idx
	return idx
}

// AddSpring connects points a and b. The rest length is the current distance
// between them. No a != b validation: a degenerate spring contributes nothing
// because Simulate skips zero-length springs.
func (n *Network) AddSpring(a, b int, stiffness, damping float32) {
	rest := rl.Vector3Length(rl.Vector3Subtract(n.Points[b].Position, n.Points[a].Position))
	n.Springs = append(n.Springs, Spring{
		A:          a,
		B:          b,
		RestLength: rest,
		Stiffness:  stiffness,
		Damping:    damping,
	})
}

// Simulate advances the network by dt using semi-implicit Euler: spring and
// damping forces are accumulated first, then velocity, then position.
// Deterministic for a fixed point/spring order. Explicit integration diverges
// at high stiffness*dt; the caller is responsible for a stable step size.
func (n *Network) Simulate(dt float32) {
	for i := range n.Points {
		n.Points[i].Force = rl.Vector3{}
	}

	for _, s := range n.Springs {
		a := &n.Points[s.A]
		b := &n.Points[s.B]

		delta := rl.Vector3Subtract(b.Position, a.Position)
		length := rl.Vector3Length(delta)
		if length == 0 {
			continue // degenerate spring, avoid division by zero
		}
		unit := rl.Vector3Scale(delta, 1/length)

		springForce := rl.Vector3Scale(unit, s.Stiffness*(length-s.RestLength))

		relVel := rl.Vector3Subtract(b.Velocity, a.Velocity)
		dampForce := rl.Vector3Scale(unit, s.Damping*rl.Vector3DotProduct(relVel, unit))

		total := rl.Vector3Add(springForce, dampForce)
		if !a.Fixed {
			a.Force = rl.Vector3Add(a.Force, total)
		}
		if !b.Fixed {
			b.Force = rl.Vector3Subtract(b.Force, total)
		}
	}

	for i := range n.Points {
		p := &n.Points[i]
		if p.Fixed {
			continue
		}
		accel := rl.Vector3Scale(p.Force, 1/p.Mass)
		p.Velocity = rl.Vector3Add(p.Velocity, rl.Vector3Scale(accel, dt))
		p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(p.Velocity, dt))
	}
}

// ApplyImpulse adds an instantaneous velocity change to every non-fixed point
// within influenceRadius of at. The change falls off linearly: full magnitude
// at distance zero, nothing at the radius boundary.
func (n *Network) ApplyImpulse(at, direction rl.Vector3, magnitude, influenceRadius float32) {
	dirLen := rl.Vector3Length(direction)
	if dirLen == 0 || influenceRadius <= 0 {
		return
	}
	unit := rl.Vector3Scale(direction, 1/dirLen)

	for i := range n.Points {
		p := &n.Points[i]
		if p.Fixed {
			continue
		}
		dist := rl.Vector3Length(rl.Vector3Subtract(p.Position, at))
		if dist >= influenceRadius {
			continue
		}
		falloff := 1 - dist/influenceRadius
		p.Velocity = rl.Vector3Add(p.Velocity, rl.Vector3Scale(unit, falloff*magnitude/p.Mass))
	}
}

// OffsetAllPoints rigidly translates every non-fixed point, leaving
// velocities untouched. Keeps the network co-moving with an externally
// translated body.
func (n *Network) OffsetAllPoints(delta rl.Vector3) {
	for i := range n.Points {
		if n.Points[i].Fixed {
			continue
		}
		n.Points[i].Position = rl.Vector3Add(n.Points[i].Position, delta)
	}
}

// Positions returns a snapshot of all point positions in index order.
func (n *Network) Positions() []rl.Vector3 {
	out := make([]rl.Vector3, len(n.Points))
	for i := range n.Points {
		out[i] = n.Points[i].Position
	}
	return out
}
