// Package curve samples smooth curves through point sequences. It backs
// the camera paths and the straight-to-organic morph of the sculpture
// skeleton. All sampling is deterministic: identical inputs always
// produce identical output.
package curve

import (
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// closestSteps is the dense sampling resolution of ClosestParam.
const closestSteps = 100

// Spline is an arc-length parameterized cardinal (Catmull-Rom family)
// spline through a point sequence. Tension 0 is the classic Catmull-Rom
// curve; tension 1 degenerates to the control polyline.
type Spline struct {
	pts     []r3.Vec
	closed  bool
	tension float64

	// cumulative arc length table over uniform raw parameters.
	table []float64
	total float64
}

// NewSpline builds a spline through pts. Closed splines wrap around so
// that Eval(0) == Eval(1). Fewer than two points yields a degenerate
// spline pinned to the single point or the origin.
func NewSpline(pts []r3.Vec, closed bool, tension float64) *Spline {
	s := &Spline{
		pts:     append([]r3.Vec(nil), pts...),
		closed:  closed,
		tension: sculpt.Clamp01(tension),
	}
	s.buildTable()
	return s
}

func (s *Spline) buildTable() {
	n := s.segments()
	if n == 0 {
		return
	}
	steps := 20 * n
	if steps < 100 {
		steps = 100
	}
	s.table = make([]float64, steps+1)
	prev := s.rawEval(0)
	for i := 1; i <= steps; i++ {
		p := s.rawEval(float64(i) / float64(steps))
		s.total += r3.Norm(r3.Sub(p, prev))
		s.table[i] = s.total
		prev = p
	}
}

func (s *Spline) segments() int {
	if len(s.pts) < 2 {
		return 0
	}
	if s.closed {
		return len(s.pts)
	}
	return len(s.pts) - 1
}

// Length returns the total arc length of the spline.
func (s *Spline) Length() float64 { return s.total }

// Closed reports whether the spline wraps around.
func (s *Spline) Closed() bool { return s.closed }

// Eval returns the point at arc-length fraction t in [0,1]. Open
// splines clamp t; closed splines wrap it.
func (s *Spline) Eval(t float64) r3.Vec {
	if len(s.pts) == 0 {
		return r3.Vec{}
	}
	if len(s.pts) == 1 || s.total == 0 {
		return s.pts[0]
	}
	if s.closed {
		t = t - float64(int(t))
		if t < 0 {
			t++
		}
	} else {
		t = sculpt.Clamp01(t)
	}
	return s.rawEval(s.rawParam(t * s.total))
}

// Tangent returns the unit tangent at arc-length fraction t, estimated
// from a small central difference. Degenerate splines return zero.
func (s *Spline) Tangent(t float64) r3.Vec {
	const h = 1e-3
	a := s.Eval(t - h)
	b := s.Eval(t + h)
	return d3.UnitOrZero(r3.Sub(b, a), 1e-12)
}

// rawParam inverts the arc length table: maps a target length to the
// uniform raw parameter.
func (s *Spline) rawParam(target float64) float64 {
	steps := len(s.table) - 1
	lo, hi := 0, steps
	for lo < hi {
		mid := (lo + hi) / 2
		if s.table[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	l0, l1 := s.table[lo-1], s.table[lo]
	frac := 0.0
	if l1 > l0 {
		frac = (target - l0) / (l1 - l0)
	}
	return (float64(lo-1) + frac) / float64(steps)
}

// rawEval evaluates the cardinal spline at uniform parameter u in
// [0,1], spread evenly across segments.
func (s *Spline) rawEval(u float64) r3.Vec {
	n := s.segments()
	if n == 0 {
		if len(s.pts) == 1 {
			return s.pts[0]
		}
		return r3.Vec{}
	}
	u = sculpt.Clamp01(u) * float64(n)
	seg := int(u)
	if seg >= n {
		seg = n - 1
	}
	lt := u - float64(seg)

	p0 := s.control(seg - 1)
	p1 := s.control(seg)
	p2 := s.control(seg + 1)
	p3 := s.control(seg + 2)

	// Cardinal tangents; tension pulls them toward zero.
	k := (1 - s.tension) / 2
	m1 := r3.Scale(k, r3.Sub(p2, p0))
	m2 := r3.Scale(k, r3.Sub(p3, p1))

	t2 := lt * lt
	t3 := t2 * lt
	out := r3.Scale(2*t3-3*t2+1, p1)
	out = r3.Add(out, r3.Scale(t3-2*t2+lt, m1))
	out = r3.Add(out, r3.Scale(-2*t3+3*t2, p2))
	out = r3.Add(out, r3.Scale(t3-t2, m2))
	return out
}

// control returns the i-th control point with wrap or clamp at the
// ends depending on closure.
func (s *Spline) control(i int) r3.Vec {
	n := len(s.pts)
	if s.closed {
		i = ((i % n) + n) % n
	} else {
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
	}
	return s.pts[i]
}

// ClosestParam returns the arc-length fraction of the spline point
// nearest to q, found by dense sampling, plus whether increasing the
// parameter from there moves toward the next reference point.
func (s *Spline) ClosestParam(q, next r3.Vec) (t float64, forward bool) {
	if len(s.pts) == 0 {
		return 0, true
	}
	best := 0.0
	bestDist := r3.Norm(r3.Sub(q, s.Eval(0)))
	for i := 1; i <= closestSteps; i++ {
		u := float64(i) / closestSteps
		if d := r3.Norm(r3.Sub(q, s.Eval(u))); d < bestDist {
			best, bestDist = u, d
		}
	}
	const dt = 1.0 / closestSteps
	ahead := r3.Norm(r3.Sub(next, s.Eval(best+dt)))
	behind := r3.Norm(r3.Sub(next, s.Eval(best-dt)))
	return best, ahead <= behind
}

// Blend interpolates between the corner polyline and the spline at a
// shared arc-length fraction t. blend 0 is the angular polyline, blend
// 1 the organic curve. Both sides share one parameterization: for a
// closed spline the polyline is sampled as a closed loop, so its
// closing edge is part of the arc length and t lands on matching
// corners on both curves.
func Blend(corners sculpt.Path, s *Spline, t, blend float64) r3.Vec {
	if s == nil {
		return corners.PointAt(t)
	}
	straight := corners.PointAt(t)
	if s.closed {
		straight = corners.LoopAt(t)
	}
	return d3.Lerp(straight, s.Eval(t), sculpt.Clamp01(blend))
}
