package lattice

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
)

// zigzag builds a path alternating between the two unit directions, so
// every interior corner has the same angle acos(-a.b).
func zigzag(a, b r3.Vec, step float64, n int) sculpt.Path {
	p := sculpt.Path{{}}
	for i := 0; i < n; i++ {
		dir := a
		if i%2 == 1 {
			dir = b
		}
		p = append(p, r3.Add(p[len(p)-1], r3.Scale(step, dir)))
	}
	return p
}

func TestInferSquarePath(t *testing.T) {
	square := sculpt.Path{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	d := Infer(square)
	if d.Type != SC {
		t.Errorf("square path type: got %s, want SC", d.Type)
	}
	if math.Abs(d.Constant-1) > 1e-12 {
		t.Errorf("square path constant: got %g, want 1", d.Constant)
	}
}

func TestInferDegenerate(t *testing.T) {
	for _, test := range []struct {
		name string
		path sculpt.Path
	}{
		{"empty", nil},
		{"single", sculpt.Path{{X: 1}}},
		{"repeated", sculpt.Path{{X: 1}, {X: 1}, {X: 1}}},
	} {
		d := Infer(test.path)
		if d.Type != SC || d.Constant != 1 {
			t.Errorf("%s: got {%s %g}, want {SC 1}", test.name, d.Type, d.Constant)
		}
	}
}

func TestInferBCCAngles(t *testing.T) {
	// Alternating body-diagonal directions meet at acos(-1/3) = 109.47
	// degrees, the tetrahedral corner angle.
	s := 1 / math.Sqrt(3)
	a := r3.Vec{X: s, Y: s, Z: s}
	b := r3.Vec{X: s, Y: -s, Z: s}
	d := Infer(zigzag(a, b, 0.87, 12))
	if d.Type != BCC {
		t.Errorf("tetrahedral path type: got %s, want BCC", d.Type)
	}
	if math.Abs(d.Constant-0.87) > 1e-9 {
		t.Errorf("constant: got %g, want 0.87", d.Constant)
	}
}

func TestInferFCCAngles(t *testing.T) {
	// Alternating face-diagonal directions meet at 120 degrees.
	a := r3.Vec{X: 1}
	b := r3.Vec{X: 0.5, Y: math.Sqrt(3) / 2}
	d := Infer(zigzag(a, b, 0.72, 12))
	if d.Type != FCC {
		t.Errorf("face-diagonal path type: got %s, want FCC", d.Type)
	}
}

func TestInferShortestSegmentConstant(t *testing.T) {
	p := sculpt.Path{{X: 0}, {X: 3}, {X: 3, Y: 2}, {X: 3, Y: 2, Z: 5}}
	d := Infer(p)
	if math.Abs(d.Constant-2) > 1e-12 {
		t.Errorf("constant: got %g, want 2 (shortest segment)", d.Constant)
	}
}

func TestClassifyDistancesInconclusive(t *testing.T) {
	// Equally spaced collinear corners carry only SC ratios, so the
	// second-opinion classifier must not promote.
	p := sculpt.Path{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	if typ, ok := classifyDistances(p); ok {
		t.Errorf("collinear path promoted to %s", typ)
	}
}

func TestBasisFillsThreeVectors(t *testing.T) {
	for _, test := range []struct {
		name string
		path sculpt.Path
	}{
		{"empty", nil},
		{"collinear", sculpt.Path{{X: 0}, {X: 1}, {X: 2}}},
		{"planar", sculpt.Path{{X: 0}, {X: 1}, {X: 1, Y: 1}}},
		{"full", sculpt.Path{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 1, Y: 1, Z: 1}}},
	} {
		basis := Basis(test.path, 2)
		for i, v := range basis {
			n := r3.Norm(v)
			if math.Abs(n-2) > 1e-9 {
				t.Errorf("%s basis[%d]: norm %g, want 2", test.name, i, n)
			}
		}
		// Pairwise independence.
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				cosine := math.Abs(r3.Dot(basis[i], basis[j])) / (r3.Norm(basis[i]) * r3.Norm(basis[j]))
				if cosine >= parallelCos {
					t.Errorf("%s basis %d,%d parallel (cos %g)", test.name, i, j, cosine)
				}
			}
		}
	}
}

func TestPointsContainment(t *testing.T) {
	corners := sculpt.Path{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	center := corners.Centroid()
	const radius = 3.0
	pts := Points(center, radius, 1, corners)
	if len(pts) == 0 {
		t.Fatal("no lattice points enumerated")
	}
	for _, p := range pts {
		if r3.Norm(r3.Sub(p, center)) > radius+1e-9 {
			t.Errorf("point %v outside radius %g", p, radius)
		}
	}
}

func TestPointsIncludesOrigin(t *testing.T) {
	// A unit square path infers SC with constant 1, and the first corner
	// anchors the lattice: the origin must be in any radius-2 set.
	corners := sculpt.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	d := Infer(corners)
	if d.Type != SC || math.Abs(d.Constant-1) > 1e-12 {
		t.Fatalf("descriptor: got {%s %g}, want {SC 1}", d.Type, d.Constant)
	}
	pts := Points(corners.Centroid(), 2, d.Constant, corners)
	found := false
	for _, p := range pts {
		if r3.Norm(p) < 1e-9 {
			found = true
			break
		}
	}
	if !found {
		t.Error("origin missing from lattice point set")
	}
}

func TestPointsDegenerate(t *testing.T) {
	if pts := Points(r3.Vec{}, 0, 1, nil); pts != nil {
		t.Errorf("zero radius: got %d points, want none", len(pts))
	}
	if pts := Points(r3.Vec{}, 2, 0, nil); pts != nil {
		t.Errorf("zero constant: got %d points, want none", len(pts))
	}
}

func TestPointsDeterministic(t *testing.T) {
	corners := sculpt.Path{{X: 0}, {X: 1}, {X: 1, Y: 1}}
	a := Points(corners.Centroid(), 2.5, 1, corners)
	b := Points(corners.Centroid(), 2.5, 1, corners)
	if len(a) != len(b) {
		t.Fatalf("count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
