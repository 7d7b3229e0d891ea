package sculpt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// Path is the ordered corner sequence the sculpture is lofted along.
// Consecutive corners are expected to be distinct; use Dedup before
// feeding a path to lattice inference.
type Path []r3.Vec

// Dedup returns the path with zero-length segments removed. The input
// is not modified.
func (p Path) Dedup() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, 0, len(p))
	out = append(out, p[0])
	for _, v := range p[1:] {
		if !d3.EqualWithin(v, out[len(out)-1], epsilon) {
			out = append(out, v)
		}
	}
	return out
}

// SegmentLengths returns the length of every consecutive segment.
func (p Path) SegmentLengths() []float64 {
	if len(p) < 2 {
		return nil
	}
	lengths := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		lengths[i-1] = r3.Norm(r3.Sub(p[i], p[i-1]))
	}
	return lengths
}

// Length returns the total arc length of the path polyline.
func (p Path) Length() float64 {
	total := 0.0
	for _, l := range p.SegmentLengths() {
		total += l
	}
	return total
}

// Centroid returns the mean of the path corners, or the zero vector for
// an empty path.
func (p Path) Centroid() r3.Vec {
	if len(p) == 0 {
		return r3.Vec{}
	}
	return d3.Centroid(d3.Set(p))
}

// BoundingRadius returns the largest corner distance from the centroid.
func (p Path) BoundingRadius() float64 {
	c := p.Centroid()
	radius := 0.0
	for _, v := range p {
		if d := r3.Norm(r3.Sub(v, c)); d > radius {
			radius = d
		}
	}
	return radius
}

// PointAt returns the point at arc-length fraction t in [0,1] along the
// corner polyline.
func (p Path) PointAt(t float64) r3.Vec {
	if len(p) == 0 {
		return r3.Vec{}
	}
	if len(p) == 1 || t <= 0 {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}
	target := t * p.Length()
	walked := 0.0
	for i := 1; i < len(p); i++ {
		seg := r3.Norm(r3.Sub(p[i], p[i-1]))
		if walked+seg >= target && seg > 0 {
			frac := (target - walked) / seg
			return d3.Lerp(p[i-1], p[i], frac)
		}
		walked += seg
	}
	return p[len(p)-1]
}

// LoopAt returns the point at arc-length fraction t along the closed
// corner loop, with the closing edge back to the first corner included
// in the total length. The parameter wraps outside [0,1).
func (p Path) LoopAt(t float64) r3.Vec {
	if len(p) < 2 {
		return p.PointAt(t)
	}
	loop := make(Path, 0, len(p)+1)
	loop = append(loop, p...)
	loop = append(loop, p[0])
	t -= math.Floor(t)
	return loop.PointAt(t)
}

// Nearest returns the closest point to q on the corner polyline along
// with its arc-length fraction. An empty path returns the zero vector.
func (p Path) Nearest(q r3.Vec) (point r3.Vec, t float64) {
	if len(p) == 0 {
		return r3.Vec{}, 0
	}
	if len(p) == 1 {
		return p[0], 0
	}
	total := p.Length()
	best := p[0]
	bestDist := r3.Norm(r3.Sub(q, p[0]))
	bestT := 0.0
	walked := 0.0
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		seg := r3.Norm(r3.Sub(b, a))
		pt, frac := nearestOnSegment(q, a, b)
		if d := r3.Norm(r3.Sub(q, pt)); d < bestDist {
			bestDist = d
			best = pt
			if total > 0 {
				bestT = (walked + frac*seg) / total
			}
		}
		walked += seg
	}
	return best, bestT
}

// nearestOnSegment returns the closest point on segment ab to q and the
// parameter along the segment in [0,1].
func nearestOnSegment(q, a, b r3.Vec) (r3.Vec, float64) {
	ab := r3.Sub(b, a)
	ab2 := r3.Dot(ab, ab)
	if ab2 < epsilon {
		return a, 0
	}
	t := Clamp01(r3.Dot(r3.Sub(q, a), ab) / ab2)
	return r3.Add(a, r3.Scale(t, ab)), t
}
