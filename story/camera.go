package story

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/curve"
)

// CameraPath is the one genuinely time-accumulating piece of state in
// the engine: a smooth flight through the hull-derived viewpoints.
// Restart zeroes the clock whenever the owning animation begins.
type CameraPath struct {
	session *Session
	path    *curve.Spline
	elapsed float64
	// Period is the seconds per full loop. Zero means the default.
	Period float64
}

const defaultCameraPeriod = 30.0

// Restart zeroes the accumulated flight time.
func (c *CameraPath) Restart() { c.elapsed = 0 }

// Advance accumulates frame time. Negative deltas are ignored.
func (c *CameraPath) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// State returns the current camera position and look-at target. With
// no usable viewpoints it falls back to a standoff along +Z.
func (c *CameraPath) State() (position, target r3.Vec) {
	s := c.session
	target = s.corners.Centroid()
	if c.path == nil {
		pts := make([]r3.Vec, 0, len(s.views))
		for _, v := range s.views {
			pts = append(pts, v.Position)
		}
		if len(pts) < 2 {
			standoff := s.corners.BoundingRadius()*3 + 1
			return r3.Add(target, r3.Vec{Z: standoff}), target
		}
		c.path = curve.NewSpline(pts, true, 0)
	}
	period := c.Period
	if period <= 0 {
		period = defaultCameraPeriod
	}
	t := c.elapsed / period
	t -= float64(int(t))
	return c.path.Eval(t), target
}

// ZoomAccumulator smooths wheel and pinch gestures: deltas gather
// until they clear the hysteresis threshold, then release as one step.
type ZoomAccumulator struct {
	acc float64
	// Threshold is the release magnitude. Zero means the default.
	Threshold float64
}

const defaultZoomThreshold = 0.25

// Add feeds a gesture delta and returns the released zoom step, zero
// while the accumulator is still inside the hysteresis band.
func (z *ZoomAccumulator) Add(delta float64) float64 {
	z.acc += delta
	threshold := z.Threshold
	if threshold <= 0 {
		threshold = defaultZoomThreshold
	}
	if z.acc >= threshold || z.acc <= -threshold {
		step := z.acc
		z.acc = 0
		return step
	}
	return 0
}

// Reset drops any gathered delta.
func (z *ZoomAccumulator) Reset() { z.acc = 0 }
