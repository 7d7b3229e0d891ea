// Package hull computes convex hulls over path corners and derives the
// canonical camera viewpoints (corner, edge, face) used by the story
// camera. Neither gonum nor the rest of the stack ships a 3D hull, so
// the incremental construction lives here.
package hull

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

const hullEps = 1e-9

// Face is a counter-clockwise triangle of hull vertex indices. Its
// normal points out of the hull.
type Face struct {
	A, B, C int
}

// Edge is an unordered pair of hull vertex indices with A < B.
type Edge struct {
	A, B int
}

// Hull is the convex hull of a point set. Degenerate input (fewer than
// four non-coplanar points) produces a hull without faces; callers
// render nothing rather than failing.
type Hull struct {
	Points []r3.Vec
	Faces  []Face
}

// New computes the convex hull of points with an incremental
// construction: seed tetrahedron, then per point delete visible faces
// and re-cone the horizon.
func New(points []r3.Vec) *Hull {
	h := &Hull{Points: append([]r3.Vec(nil), points...)}
	seed, ok := h.seedTetrahedron()
	if !ok {
		return h
	}
	h.Faces = seed
	claimed := make(map[int]bool, 4)
	for _, f := range seed {
		claimed[f.A], claimed[f.B], claimed[f.C] = true, true, true
	}
	for i := range h.Points {
		if claimed[i] {
			continue
		}
		h.addPoint(i)
	}
	return h
}

// seedTetrahedron finds four non-coplanar points and returns the four
// outward-facing seed faces.
func (h *Hull) seedTetrahedron() ([]Face, bool) {
	pts := h.Points
	if len(pts) < 4 {
		return nil, false
	}
	i0 := 0
	i1 := -1
	for i := 1; i < len(pts); i++ {
		if r3.Norm(r3.Sub(pts[i], pts[i0])) > hullEps {
			i1 = i
			break
		}
	}
	if i1 < 0 {
		return nil, false
	}
	dir := r3.Sub(pts[i1], pts[i0])
	i2 := -1
	for i := 0; i < len(pts); i++ {
		if i == i0 || i == i1 {
			continue
		}
		if r3.Norm(r3.Cross(dir, r3.Sub(pts[i], pts[i0]))) > hullEps {
			i2 = i
			break
		}
	}
	if i2 < 0 {
		return nil, false
	}
	n := r3.Cross(r3.Sub(pts[i1], pts[i0]), r3.Sub(pts[i2], pts[i0]))
	i3 := -1
	for i := 0; i < len(pts); i++ {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		if math.Abs(r3.Dot(n, r3.Sub(pts[i], pts[i0]))) > hullEps {
			i3 = i
			break
		}
	}
	if i3 < 0 {
		return nil, false
	}
	faces := []Face{
		{i0, i1, i2},
		{i0, i2, i3},
		{i0, i3, i1},
		{i1, i3, i2},
	}
	center := d3.Centroid(d3.Set{pts[i0], pts[i1], pts[i2], pts[i3]})
	for fi, f := range faces {
		if h.signedDist(f, center) > 0 {
			faces[fi] = Face{f.A, f.C, f.B}
		}
	}
	return faces, true
}

// signedDist is the distance of p above the plane of face f, positive
// on the outward normal side.
func (h *Hull) signedDist(f Face, p r3.Vec) float64 {
	n := h.faceNormal(f)
	return r3.Dot(n, r3.Sub(p, h.Points[f.A]))
}

func (h *Hull) faceNormal(f Face) r3.Vec {
	a, b, c := h.Points[f.A], h.Points[f.B], h.Points[f.C]
	return d3.UnitOrZero(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), 0)
}

// addPoint extends the hull to cover point i. Interior points leave the
// hull unchanged.
func (h *Hull) addPoint(i int) {
	p := h.Points[i]
	var kept []Face
	horizon := make(map[Edge]int)
	countEdge := func(a, b int) {
		e := Edge{a, b}
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		horizon[e]++
	}
	visible := false
	for _, f := range h.Faces {
		if h.signedDist(f, p) > hullEps {
			visible = true
			countEdge(f.A, f.B)
			countEdge(f.B, f.C)
			countEdge(f.C, f.A)
		} else {
			kept = append(kept, f)
		}
	}
	if !visible {
		return
	}
	// Edges referenced by exactly one removed face form the horizon.
	center := h.interiorPoint(kept)
	for e, n := range horizon {
		if n != 1 {
			continue
		}
		f := Face{e.A, e.B, i}
		if h.signedDist(f, center) > 0 {
			f = Face{e.B, e.A, i}
		}
		kept = append(kept, f)
	}
	h.Faces = kept
}

func (h *Hull) interiorPoint(faces []Face) r3.Vec {
	var set d3.Set
	for _, f := range faces {
		set = append(set, h.Points[f.A], h.Points[f.B], h.Points[f.C])
	}
	if len(set) == 0 {
		set = h.Points
	}
	return d3.Centroid(set)
}

// Centroid returns the mean of the hull's vertices (every point that
// appears in a face), or of all input points when the hull is
// degenerate.
func (h *Hull) Centroid() r3.Vec {
	verts := h.vertexSet()
	if len(verts) == 0 {
		return d3.Centroid(d3.Set(h.Points))
	}
	var set d3.Set
	for i := range verts {
		set = append(set, h.Points[i])
	}
	return d3.Centroid(set)
}

// Size returns the largest vertex distance from the hull centroid.
func (h *Hull) Size() float64 {
	c := h.Centroid()
	size := 0.0
	for _, p := range h.Points {
		if d := r3.Norm(r3.Sub(p, c)); d > size {
			size = d
		}
	}
	return size
}

// Edges returns the deduplicated wireframe edges of the hull.
func (h *Hull) Edges() []Edge {
	seen := make(map[Edge]struct{})
	add := func(a, b int) {
		e := Edge{a, b}
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		seen[e] = struct{}{}
	}
	for _, f := range h.Faces {
		add(f.A, f.B)
		add(f.B, f.C)
		add(f.C, f.A)
	}
	edges := make([]Edge, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return edges
}

// Wireframe returns the edge endpoints as segment pairs for direct
// line rendering.
func (h *Hull) Wireframe() [][2]r3.Vec {
	edges := h.Edges()
	out := make([][2]r3.Vec, len(edges))
	for i, e := range edges {
		out[i] = [2]r3.Vec{h.Points[e.A], h.Points[e.B]}
	}
	return out
}

func (h *Hull) vertexSet() map[int]struct{} {
	verts := make(map[int]struct{})
	for _, f := range h.Faces {
		verts[f.A] = struct{}{}
		verts[f.B] = struct{}{}
		verts[f.C] = struct{}{}
	}
	return verts
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
}
