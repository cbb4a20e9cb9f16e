package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh is an indexed triangle mesh in local space. Each body owns its vertex
// buffer exclusively; deformation writes mutate it in place and nothing else
// shares it.
type Mesh struct {
	Vertices []rl.Vector3
	Normals  []rl.Vector3
	Indices  []int32
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the i-th triangle's vertices in index order.
func (m *Mesh) Triangle(i int) (v0, v1, v2 rl.Vector3) {
	v0 = m.Vertices[m.Indices[i*3+0]]
	v1 = m.Vertices[m.Indices[i*3+1]]
	v2 = m.Vertices[m.Indices[i*3+2]]
	return
}

// Clone deep-copies the mesh so two bodies never share vertex storage.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices: make([]rl.Vector3, len(m.Vertices)),
		Normals:  make([]rl.Vector3, len(m.Normals)),
		Indices:  make([]int32, len(m.Indices)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Normals, m.Normals)
	copy(c.Indices, m.Indices)
	return c
}

// Bounds returns the axis-aligned extents of the vertex set.
func (m *Mesh) Bounds() (min, max rl.Vector3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min.X = math32.Min(min.X, v.X)
		min.Y = math32.Min(min.Y, v.Y)
		min.Z = math32.Min(min.Z, v.Z)
		max.X = math32.Max(max.X, v.X)
		max.Y = math32.Max(max.Y, v.Y)
		max.Z = math32.Max(max.Z, v.Z)
	}
	return
}

// RecomputeNormals rebuilds all vertex normals from the current vertex
// positions. Full recompute, no incremental update: deformation can move any
// subset of vertices. Zero-area triangles contribute nothing.
func (m *Mesh) RecomputeNormals() {
	if len(m.Normals) != len(m.Vertices) {
		m.Normals = make([]rl.Vector3, len(m.Vertices))
	}
	for i := range m.Normals {
		m.Normals[i] = rl.Vector3{}
	}

	for i := 0; i < m.TriangleCount(); i++ {
		i0 := m.Indices[i*3+0]
		i1 := m.Indices[i*3+1]
		i2 := m.Indices[i*3+2]

		edge1 := rl.Vector3Subtract(m.Vertices[i1], m.Vertices[i0])
		edge2 := rl.Vector3Subtract(m.Vertices[i2], m.Vertices[i0])
		face := rl.Vector3CrossProduct(edge1, edge2)
		if rl.Vector3Length(face) == 0 {
			continue // degenerate triangle
		}

		// Area-weighted accumulation: the unnormalized cross product already
		// carries twice the triangle area.
		m.Normals[i0] = rl.Vector3Add(m.Normals[i0], face)
		m.Normals[i1] = rl.Vector3Add(m.Normals[i1], face)
		m.Normals[i2] = rl.Vector3Add(m.Normals[i2], face)
	}

	for i := range m.Normals {
		if l := rl.Vector3Length(m.Normals[i]); l > 0 {
			m.Normals[i] = rl.Vector3Scale(m.Normals[i], 1/l)
		}
	}
}
