package components

import (
	"log"

	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/engine"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/geom"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/softbody"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SoftBody owns one deformable body: its mass-spring network, its exclusively
// owned render mesh, and the vertex-to-point mapping that projects simulated
// positions back onto the mesh each step.
//
// Lifecycle: build once (from mesh vertices or from a voxel point cloud),
// then Advance every fixed step until the body breaks or is destroyed.
type SoftBody struct {
	engine.BaseComponent

	Net  *softbody.Network
	Mesh *geom.Mesh

	Material Material

	// Static descriptors, normally filled from the tuning file
	Height        float32 // vertical extent for capsule/bounding sphere
	Radius        float32 // lateral extent
	BreakSpeed    float32 // brittle bodies break above this impact speed
	DentDepth     float32 // tin dent depth at the impact center
	DentRadius    float32 // tin dent falloff radius
	ImpulseRadius float32 // influence radius for impact impulses
	MoveSpeed     float32 // nominal rigid move speed, scales collision pushes
	PointMass     float32

	// Rigid body-level motion, applied before spring integration each step
	Velocity      rl.Vector3
	LinearDamping float32

	// Broken is the terminal state: the body is inert and skips all
	// further processing. Never reset.
	Broken bool

	mapping []int        // one simulation point index per mesh vertex
	dents   []rl.Vector3 // accumulated permanent local-space offsets
}

func NewSoftBody(material Material) *SoftBody {
	return &SoftBody{
		Material:      material,
		PointMass:     1,
		ImpulseRadius: 0.5,
		LinearDamping: 0.2,
	}
}

// BuildFromMesh takes ownership of mesh and builds the network 1:1 from its
// vertices in world space (direct mapping). Coincident vertices, such as UV
// seams, merge into a single mass point shared by their vertices.
func (s *SoftBody) BuildFromMesh(mesh *geom.Mesh, mass, stiffness, damping, connectDistance float32) {
	g := s.GetGameObject()
	if g == nil || mesh == nil || len(mesh.Vertices) == 0 {
		log.Printf("softbody: BuildFromMesh without object or mesh data")
		return
	}

	matrix := g.Transform.Matrix()
	worldPts := make([]rl.Vector3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		worldPts[i] = rl.Vector3Transform(v, matrix)
	}

	net := softbody.BuildFromPoints(worldPts, mass, stiffness, damping, connectDistance)

	mapping := make([]int, len(worldPts))
	for i, wp := range worldPts {
		mapping[i] = net.AddOrGetPoint(wp, mass, false)
	}

	s.Mesh = mesh
	s.Net = net
	s.mapping = mapping
	s.dents = nil
}

// BuildFromPoints builds the network from an independent point cloud (voxel
// samples, world space) and precomputes, once, the nearest simulation point
// for every mesh vertex. O(vertices * points) at init; the mapping goes
// stale if the network is ever rebuilt with a different point count, so
// rebuild the body, not the network.
func (s *SoftBody) BuildFromPoints(points []rl.Vector3, mass, stiffness, damping, connectDistance float32) {
	g := s.GetGameObject()
	if g == nil || s.Mesh == nil || len(s.Mesh.Vertices) == 0 {
		log.Printf("softbody: BuildFromPoints without object or mesh")
		return
	}
	if len(points) == 0 {
		log.Printf("softbody: BuildFromPoints without voxel data")
		return
	}

	net := softbody.BuildFromPoints(points, mass, stiffness, damping, connectDistance)

	matrix := g.Transform.Matrix()
	mapping := make([]int, len(s.Mesh.Vertices))
	for i, v := range s.Mesh.Vertices {
		world := rl.Vector3Transform(v, matrix)
		mapping[i] = nearestPoint(net, world)
	}

	s.Net = net
	s.mapping = mapping
	s.dents = nil
}

func nearestPoint(net *softbody.Network, world rl.Vector3) int {
	best := 0
	bestSq := float32(-1)
	for i := range net.Points {
		d := rl.Vector3Subtract(net.Points[i].Position, world)
		dSq := rl.Vector3DotProduct(d, d)
		if bestSq < 0 || dSq < bestSq {
			bestSq = dSq
			best = i
		}
	}
	return best
}

// Project writes every mapped simulation point back into local vertex
// storage through the inverse transform, re-applies permanent dents, and
// recomputes the normals from scratch.
func (s *SoftBody) Project() {
	g := s.GetGameObject()
	if g == nil || s.Net == nil || s.Mesh == nil {
		log.Printf("softbody: Project without network or mesh")
		return
	}
	if len(s.mapping) != len(s.Mesh.Vertices) {
		log.Printf("softbody: stale vertex mapping (%d entries for %d vertices), rebuild the body",
			len(s.mapping), len(s.Mesh.Vertices))
		return
	}

	inv := g.Transform.InverseMatrix()
	for i := range s.Mesh.Vertices {
		world := s.Net.Points[s.mapping[i]].Position
		local := rl.Vector3Transform(world, inv)
		if s.dents != nil {
			local = rl.Vector3Add(local, s.dents[i])
		}
		s.Mesh.Vertices[i] = local
	}
	s.Mesh.RecomputeNormals()
}

// ApplyImpact routes an external impact into the body's own network. Broken
// bodies ignore impacts entirely.
func (s *SoftBody) ApplyImpact(at, direction rl.Vector3, magnitude float32) {
	if s.Broken || s.Net == nil {
		return
	}
	s.Net.ApplyImpulse(at, direction, magnitude, s.ImpulseRadius)
}

// Dent applies a one-shot permanent plastic deformation around the world
// space impact point: vertices within DentRadius move away from it, scaled
// linearly from DentDepth at the center to zero at the radius. The offsets
// are written into vertex storage and survive later projections; nothing
// simulates or reverses them.
func (s *SoftBody) Dent(at rl.Vector3) {
	g := s.GetGameObject()
	if g == nil || s.Mesh == nil || s.DentRadius <= 0 {
		return
	}

	if s.dents == nil {
		s.dents = make([]rl.Vector3, len(s.Mesh.Vertices))
	}

	matrix := g.Transform.Matrix()
	inv := g.Transform.InverseMatrix()
	for i, v := range s.Mesh.Vertices {
		world := rl.Vector3Transform(v, matrix)
		away := rl.Vector3Subtract(world, at)
		dist := rl.Vector3Length(away)
		if dist >= s.DentRadius || dist == 0 {
			continue
		}
		depth := s.DentDepth * (1 - dist/s.DentRadius)
		moved := rl.Vector3Add(world, rl.Vector3Scale(away, depth/dist))

		localOffset := rl.Vector3Subtract(rl.Vector3Transform(moved, inv), v)
		s.dents[i] = rl.Vector3Add(s.dents[i], localOffset)
		s.Mesh.Vertices[i] = rl.Vector3Add(v, localOffset)
	}
	s.Mesh.RecomputeNormals()
}

// OffsetBy rigidly translates the body and its network together, leaving
// point velocities untouched.
func (s *SoftBody) OffsetBy(delta rl.Vector3) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, delta)
	if s.Net != nil {
		s.Net.OffsetAllPoints(delta)
	}
}

// Advance runs one fixed step for this body in the required order: rigid
// motion offset, then spring integration, then mesh projection. Broken
// bodies are inert.
func (s *SoftBody) Advance(dt float32) {
	if s.Broken || s.Net == nil {
		return
	}

	if s.Velocity != (rl.Vector3{}) {
		s.OffsetBy(rl.Vector3Scale(s.Velocity, dt))
		damp := 1 - s.LinearDamping*dt
		if damp < 0 {
			damp = 0
		}
		s.Velocity = rl.Vector3Scale(s.Velocity, damp)
	}

	s.Net.Simulate(dt)
	s.Project()
}

// Center is the middle of the body's vertical extent in world space.
func (s *SoftBody) Center() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return rl.Vector3Add(g.Transform.Position, rl.Vector3{Y: s.Height / 2})
}

// Capsule returns the vertical silhouette capsule used as the coarse
// collision gate.
func (s *SoftBody) Capsule() (base, top rl.Vector3, radius float32) {
	g := s.GetGameObject()
	if g == nil {
		return base, top, s.Radius
	}
	base = g.Transform.Position
	top = rl.Vector3Add(base, rl.Vector3{Y: s.Height})
	return base, top, s.Radius
}

// Bounds is the conservative bounding sphere around the capsule extents.
func (s *SoftBody) Bounds() (center rl.Vector3, radius float32) {
	h := s.Height / 2
	return s.Center(), math32.Sqrt(h*h + s.Radius*s.Radius)
}

// WorldTriangles flattens the current mesh into world-space vertex triples
// for the narrow phase. Allocates per call; the detector runs on at most a
// few candidate bodies per step.
func (s *SoftBody) WorldTriangles() [][3]rl.Vector3 {
	g := s.GetGameObject()
	if g == nil || s.Mesh == nil {
		return nil
	}
	matrix := g.Transform.Matrix()
	tris := make([][3]rl.Vector3, s.Mesh.TriangleCount())
	for i := range tris {
		v0, v1, v2 := s.Mesh.Triangle(i)
		tris[i] = [3]rl.Vector3{
			rl.Vector3Transform(v0, matrix),
			rl.Vector3Transform(v1, matrix),
			rl.Vector3Transform(v2, matrix),
		}
	}
	return tris
}
