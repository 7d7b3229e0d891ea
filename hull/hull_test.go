package hull

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func cube() []r3.Vec {
	var pts []r3.Vec
	for x := 0.0; x <= 1; x++ {
		for y := 0.0; y <= 1; y++ {
			for z := 0.0; z <= 1; z++ {
				pts = append(pts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

func TestHullCube(t *testing.T) {
	h := New(cube())
	// A triangulated hull over v vertices has 2v-4 faces and 3v-6 edges.
	if got := len(h.Faces); got != 12 {
		t.Fatalf("cube hull faces: got %d, want 12", got)
	}
	if got := len(h.Edges()); got != 18 {
		t.Errorf("cube hull edges: got %d, want 18", got)
	}
	// Every input point lies on or inside every face plane.
	for _, f := range h.Faces {
		for i, p := range h.Points {
			if d := h.signedDist(f, p); d > 1e-9 {
				t.Fatalf("point %d is %g outside face %v", i, d, f)
			}
		}
	}
}

func TestHullInteriorPointIgnored(t *testing.T) {
	pts := append(cube(), r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	h := New(pts)
	if got := len(h.Faces); got != 12 {
		t.Errorf("faces with interior point: got %d, want 12", got)
	}
	for _, f := range h.Faces {
		for _, vi := range []int{f.A, f.B, f.C} {
			if vi == len(pts)-1 {
				t.Fatal("interior point appears as a hull vertex")
			}
		}
	}
}

func TestHullCentroidAndSize(t *testing.T) {
	h := New(cube())
	want := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	if c := h.Centroid(); r3.Norm(r3.Sub(c, want)) > 1e-9 {
		t.Errorf("centroid: got %v, want %v", c, want)
	}
	if s := h.Size(); math.Abs(s-math.Sqrt(3)/2) > 1e-9 {
		t.Errorf("size: got %g, want half body diagonal", s)
	}
}

func TestHullDegenerate(t *testing.T) {
	for _, test := range []struct {
		name string
		pts  []r3.Vec
	}{
		{"empty", nil},
		{"triangle", []r3.Vec{{X: 0}, {X: 1}, {Y: 1}}},
		{"coplanar", []r3.Vec{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}},
		{"collinear", []r3.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 3}}},
	} {
		h := New(test.pts)
		if len(h.Faces) != 0 {
			t.Errorf("%s: got %d faces, want none", test.name, len(h.Faces))
		}
		if views := h.Viewpoints(); views != nil {
			t.Errorf("%s: got %d viewpoints from degenerate hull", test.name, len(views))
		}
	}
}

func TestHullEdgesCanonical(t *testing.T) {
	h := New(cube())
	edges := h.Edges()
	for i, e := range edges {
		if e.A >= e.B {
			t.Errorf("edge %v not in canonical order", e)
		}
		if i > 0 {
			prev := edges[i-1]
			if e.A < prev.A || (e.A == prev.A && e.B <= prev.B) {
				t.Errorf("edges unsorted at %d: %v after %v", i, e, prev)
			}
		}
	}
	wf := h.Wireframe()
	if len(wf) != len(edges) {
		t.Errorf("wireframe count: got %d, want %d", len(wf), len(edges))
	}
}

func TestViewpointsCube(t *testing.T) {
	h := New(cube())
	views := h.Viewpoints()
	// 8 corner, 18 edge and 12 face views on the triangulated cube.
	if len(views) != 38 {
		t.Fatalf("viewpoint count: got %d, want 38", len(views))
	}
	counts := map[ViewKind]int{}
	center := h.Centroid()
	size := h.Size()
	for _, v := range views {
		counts[v.Kind]++
		if v.Target != center {
			t.Errorf("%s view targets %v, want hull centroid", v.Kind, v.Target)
		}
		if d := r3.Norm(r3.Sub(v.Position, center)); d < size {
			t.Errorf("%s view at distance %g is inside the hull extent", v.Kind, d)
		}
	}
	if counts[ViewCorner] != 8 || counts[ViewEdge] != 18 || counts[ViewFace] != 12 {
		t.Errorf("kind counts: got %v", counts)
	}
}
