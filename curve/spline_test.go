package curve

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
)

func approxEq(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

func TestSplineEndpoints(t *testing.T) {
	pts := []r3.Vec{{X: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 4}}
	s := NewSpline(pts, false, 0)
	if !approxEq(s.Eval(0), pts[0], 1e-9) {
		t.Errorf("Eval(0): got %v, want %v", s.Eval(0), pts[0])
	}
	if !approxEq(s.Eval(1), pts[3], 1e-9) {
		t.Errorf("Eval(1): got %v, want %v", s.Eval(1), pts[3])
	}
	// Open splines clamp out-of-range parameters.
	if !approxEq(s.Eval(-0.5), pts[0], 1e-9) || !approxEq(s.Eval(1.5), pts[3], 1e-9) {
		t.Error("out-of-range parameter not clamped")
	}
}

func TestSplineClosedWraps(t *testing.T) {
	pts := []r3.Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	s := NewSpline(pts, true, 0)
	if !approxEq(s.Eval(0), s.Eval(1), 1e-9) {
		t.Errorf("closed spline seam: Eval(0)=%v, Eval(1)=%v", s.Eval(0), s.Eval(1))
	}
	if !approxEq(s.Eval(0.25), s.Eval(1.25), 1e-9) {
		t.Error("closed spline does not wrap past 1")
	}
	if !approxEq(s.Eval(-0.25), s.Eval(0.75), 1e-9) {
		t.Error("closed spline does not wrap below 0")
	}
}

func TestSplineDeterministic(t *testing.T) {
	pts := []r3.Vec{{X: 0}, {X: 1, Z: 1}, {X: 2, Y: 1}, {X: 3}}
	a := NewSpline(pts, true, 0.3)
	b := NewSpline(pts, true, 0.3)
	for i := 0; i <= 50; i++ {
		u := float64(i) / 50
		if a.Eval(u) != b.Eval(u) {
			t.Fatalf("Eval(%g) differs between identical splines", u)
		}
	}
}

func TestSplineFullTensionIsPolyline(t *testing.T) {
	// Tension 1 zeroes the tangents, degenerating each segment to the
	// cubic blend of its endpoints, which stays on the chord.
	pts := []r3.Vec{{X: 0}, {X: 2}, {X: 2, Y: 2}}
	s := NewSpline(pts, false, 1)
	p := s.Eval(0.25)
	if math.Abs(p.Y) > 1e-9 || p.X < -1e-9 || p.X > 2+1e-9 {
		t.Errorf("tension-1 point off the first chord: %v", p)
	}
}

func TestSplineDegenerate(t *testing.T) {
	if got := NewSpline(nil, false, 0).Eval(0.5); got != (r3.Vec{}) {
		t.Errorf("empty spline: got %v", got)
	}
	single := NewSpline([]r3.Vec{{X: 3}}, true, 0)
	if got := single.Eval(0.7); got != (r3.Vec{X: 3}) {
		t.Errorf("single point spline: got %v", got)
	}
	if got := single.Tangent(0.5); got != (r3.Vec{}) {
		t.Errorf("degenerate tangent: got %v", got)
	}
}

func TestSplineTangentUnit(t *testing.T) {
	pts := []r3.Vec{{X: 0}, {X: 1, Y: 1}, {X: 2}, {X: 3, Y: -1}}
	s := NewSpline(pts, false, 0)
	for _, u := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		n := r3.Norm(s.Tangent(u))
		if math.Abs(n-1) > 1e-6 {
			t.Errorf("tangent at %g: norm %g, want 1", u, n)
		}
	}
}

func TestSplineLengthLowerBound(t *testing.T) {
	// Arc length can never undershoot the straight-line distance.
	pts := []r3.Vec{{X: 0}, {X: 1, Y: 1}, {X: 2}}
	s := NewSpline(pts, false, 0)
	if s.Length() < 2 {
		t.Errorf("length %g below chord total", s.Length())
	}
}

func TestClosestParam(t *testing.T) {
	pts := []r3.Vec{{X: 0}, {X: 4}}
	s := NewSpline(pts, false, 0)
	u, forward := s.ClosestParam(r3.Vec{X: 1, Y: 0.1}, r3.Vec{X: 4})
	if math.Abs(u-0.25) > 0.02 {
		t.Errorf("closest param: got %g, want about 0.25", u)
	}
	if !forward {
		t.Error("forward direction misdetected")
	}
	_, backward := s.ClosestParam(r3.Vec{X: 3}, r3.Vec{X: 0})
	if backward {
		t.Error("backward direction misdetected")
	}
}

func TestBlendEndpoints(t *testing.T) {
	corners := sculpt.Path{{X: 0}, {X: 2}, {X: 2, Y: 2}}
	s := NewSpline(corners, false, 0)
	for _, u := range []float64{0, 0.3, 0.6, 1} {
		if got, want := Blend(corners, s, u, 0), corners.PointAt(u); !approxEq(got, want, 1e-12) {
			t.Errorf("blend 0 at %g: got %v, want polyline %v", u, got, want)
		}
		if got, want := Blend(corners, s, u, 1), s.Eval(u); !approxEq(got, want, 1e-9) {
			t.Errorf("blend 1 at %g: got %v, want spline %v", u, got, want)
		}
	}
	if got := Blend(corners, nil, 0.5, 1); !approxEq(got, corners.PointAt(0.5), 1e-12) {
		t.Errorf("nil spline blend: got %v", got)
	}
}

// A closed spline and the corner polyline must share one
// parameterization: with tension 1 the spline degenerates to the
// closed control polyline, so the two sides of the blend have to agree
// everywhere, including the closing edge back to the first corner.
func TestBlendClosedLoopAgreement(t *testing.T) {
	corners := sculpt.Path{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	s := NewSpline(corners, true, 1)
	const tol = 0.05
	for _, u := range []float64{0, 1.0 / 8, 1.0 / 3, 0.5, 0.75, 7.0 / 8, 1} {
		straight := Blend(corners, s, u, 0)
		curved := Blend(corners, s, u, 1)
		if !approxEq(straight, curved, tol) {
			t.Errorf("u=%g: polyline %v diverges from spline %v", u, straight, curved)
		}
	}
	// The loop wraps: u=1 is back at the first corner for every blend.
	for _, blend := range []float64{0, 0.5, 1} {
		if got := Blend(corners, s, 1, blend); !approxEq(got, corners[0], tol) {
			t.Errorf("blend %g at u=1: got %v, want %v", blend, got, corners[0])
		}
	}
	// One third of the 16-unit loop lands a third of the way up the
	// second side, on both sides of the blend.
	want := r3.Vec{X: 4, Y: 16.0/3 - 4}
	if got := Blend(corners, s, 1.0/3, 0); !approxEq(got, want, tol) {
		t.Errorf("polyline at u=1/3: got %v, want %v", got, want)
	}
	if got := Blend(corners, s, 1.0/3, 1); !approxEq(got, want, tol) {
		t.Errorf("spline at u=1/3: got %v, want %v", got, want)
	}
}

func TestQuadBezier(t *testing.T) {
	p0, p1, p2 := r3.Vec{X: 0}, r3.Vec{X: 1, Y: 2}, r3.Vec{X: 2}
	if got := QuadBezier(p0, p1, p2, 0); got != p0 {
		t.Errorf("t=0: got %v, want %v", got, p0)
	}
	if got := QuadBezier(p0, p1, p2, 1); got != p2 {
		t.Errorf("t=1: got %v, want %v", got, p2)
	}
	mid := QuadBezier(p0, p1, p2, 0.5)
	want := r3.Vec{X: 1, Y: 1}
	if !approxEq(mid, want, 1e-12) {
		t.Errorf("t=0.5: got %v, want %v", mid, want)
	}
}
