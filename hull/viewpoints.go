package hull

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// ViewKind tags which hull feature a viewpoint looks back at.
type ViewKind uint8

const (
	// ViewCorner sits outward of a hull vertex.
	ViewCorner ViewKind = iota
	// ViewEdge sits outward of an edge midpoint.
	ViewEdge
	// ViewFace sits outward of a face centroid.
	ViewFace
)

func (k ViewKind) String() string {
	switch k {
	case ViewCorner:
		return "corner"
	case ViewEdge:
		return "edge"
	case ViewFace:
		return "face"
	}
	return "unknown"
}

// Viewpoint is a canonical camera placement: a position outward of a
// hull feature and the target it looks at.
type Viewpoint struct {
	Kind     ViewKind
	Position r3.Vec
	Target   r3.Vec
}

// viewDistanceFactor scales the hull size into the camera standoff.
const viewDistanceFactor = 2.5

// Viewpoints derives corner, edge and face camera placements from the
// hull, each pushed outward along the feature's normal at a distance
// proportional to hull size. A degenerate hull yields an empty list.
func (h *Hull) Viewpoints() []Viewpoint {
	if len(h.Faces) == 0 {
		return nil
	}
	center := h.Centroid()
	standoff := h.Size() * viewDistanceFactor

	place := func(kind ViewKind, at, normal r3.Vec) (Viewpoint, bool) {
		dir := d3.UnitOrZero(normal, 1e-12)
		if dir == (r3.Vec{}) {
			return Viewpoint{}, false
		}
		return Viewpoint{
			Kind:     kind,
			Position: r3.Add(at, r3.Scale(standoff, dir)),
			Target:   center,
		}, true
	}

	var views []Viewpoint

	// Corner views along pseudo vertex normals (sum of adjacent faces).
	vertexNormal := make(map[int]r3.Vec)
	for _, f := range h.Faces {
		n := h.faceNormal(f)
		for _, vi := range []int{f.A, f.B, f.C} {
			vertexNormal[vi] = r3.Add(vertexNormal[vi], n)
		}
	}
	for i := 0; i < len(h.Points); i++ {
		n, ok := vertexNormal[i]
		if !ok {
			continue
		}
		if v, ok := place(ViewCorner, h.Points[i], n); ok {
			views = append(views, v)
		}
	}

	// Edge views along the sum of the two adjoining face normals.
	edgeNormal := make(map[Edge]r3.Vec)
	accum := func(a, b int, n r3.Vec) {
		e := Edge{a, b}
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		edgeNormal[e] = r3.Add(edgeNormal[e], n)
	}
	for _, f := range h.Faces {
		n := h.faceNormal(f)
		accum(f.A, f.B, n)
		accum(f.B, f.C, n)
		accum(f.C, f.A, n)
	}
	for _, e := range h.Edges() {
		mid := r3.Scale(0.5, r3.Add(h.Points[e.A], h.Points[e.B]))
		if v, ok := place(ViewEdge, mid, edgeNormal[e]); ok {
			views = append(views, v)
		}
	}

	// Face views along the face normal from the face centroid.
	for _, f := range h.Faces {
		c := d3.Centroid(d3.Set{h.Points[f.A], h.Points[f.B], h.Points[f.C]})
		if v, ok := place(ViewFace, c, h.faceNormal(f)); ok {
			views = append(views, v)
		}
	}
	return views
}
