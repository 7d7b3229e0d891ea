// Package render owns the triangle mesh types produced by the loft
// engine and their STL serialization.
package render

import (
	"io"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// Renderer streams triangles from a mesh source.
type Renderer interface {
	// ReadTriangles writes triangles into t and returns the amount
	// written. io.EOF signals the source is exhausted.
	ReadTriangles(t []Triangle) (int, error)
}

// Triangle is a 3D triangle defined by its vertices.
type Triangle struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle, zero for degenerate
// triangles.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return d3.UnitOrZero(r3.Cross(e1, e2), 0)
}

// Degenerate returns true if any two vertices coincide within tol.
func (t Triangle) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// Mesh is an indexed triangle mesh with per-vertex attributes. Indices
// hold three vertex indices per triangle.
type Mesh struct {
	Positions []r3.Vec
	Normals   []r3.Vec
	UV        []r2.Vec
	Indices   []int
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the i-th triangle of the mesh.
func (m *Mesh) Triangle(i int) Triangle {
	return Triangle{V: [3]r3.Vec{
		m.Positions[m.Indices[3*i]],
		m.Positions[m.Indices[3*i+1]],
		m.Positions[m.Indices[3*i+2]],
	}}
}

// Triangles expands the index buffer into a flat triangle slice.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, m.TriangleCount())
	for i := range out {
		out[i] = m.Triangle(i)
	}
	return out
}

// ComputeNormals fills the per-vertex normals with the area-weighted
// average of incident face normals. Existing normals are overwritten.
func (m *Mesh) ComputeNormals() {
	m.Normals = make([]r3.Vec, len(m.Positions))
	for i := 0; i < m.TriangleCount(); i++ {
		a := m.Indices[3*i]
		b := m.Indices[3*i+1]
		c := m.Indices[3*i+2]
		// Cross product magnitude carries the area weighting.
		fn := r3.Cross(
			r3.Sub(m.Positions[b], m.Positions[a]),
			r3.Sub(m.Positions[c], m.Positions[a]),
		)
		m.Normals[a] = r3.Add(m.Normals[a], fn)
		m.Normals[b] = r3.Add(m.Normals[b], fn)
		m.Normals[c] = r3.Add(m.Normals[c], fn)
	}
	for i, n := range m.Normals {
		m.Normals[i] = d3.UnitOrZero(n, 0)
	}
}

// NewMeshRenderer returns a Renderer streaming the mesh's triangles.
func NewMeshRenderer(m *Mesh) Renderer {
	return &meshRenderer{m: m}
}

type meshRenderer struct {
	m    *Mesh
	next int
}

func (r *meshRenderer) ReadTriangles(dst []Triangle) (int, error) {
	total := r.m.TriangleCount()
	if r.next >= total {
		return 0, io.EOF
	}
	n := 0
	for n < len(dst) && r.next < total {
		dst[n] = r.m.Triangle(r.next)
		n++
		r.next++
	}
	return n, nil
}
