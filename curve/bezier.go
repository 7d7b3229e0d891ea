package curve

import (
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
)

// QuadBezier evaluates the quadratic Bézier curve through control
// points p0, p1, p2 at t in [0,1]. The two-sphere collision animation
// flies its spheres along these arcs.
func QuadBezier(p0, p1, p2 r3.Vec, t float64) r3.Vec {
	t = sculpt.Clamp01(t)
	u := 1 - t
	out := r3.Scale(u*u, p0)
	out = r3.Add(out, r3.Scale(2*u*t, p1))
	out = r3.Add(out, r3.Scale(t*t, p2))
	return out
}
