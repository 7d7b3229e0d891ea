// Package sculpt holds the shared types of the sculpture story engine:
// the sculpture path skeleton, progress blending helpers and the
// instance batch layout handed to renderers.
package sculpt

import "math"

const (
	// ProgressMax is the upper bound of a chapter progress value.
	// Sliders scrub chapters in the closed interval [0, ProgressMax].
	ProgressMax = 100.0

	epsilon = 1e-12
)

// Clamp x between a and b, assume a <= b.
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Clamp01 clamps x to the unit interval.
func Clamp01(x float64) float64 { return Clamp(x, 0, 1) }

// Mix does a linear interpolation from x to y, a = [0,1].
func Mix(x, y, a float64) float64 {
	return x + a*(y-x)
}

// Unmix maps x in [a,b] to [0,1], clamped. Degenerate interval returns 0.
func Unmix(x, a, b float64) float64 {
	if b-a < epsilon {
		return 0
	}
	return Clamp01((x - a) / (b - a))
}

// Smoothstep is the cubic hermite blend between edges a and b.
func Smoothstep(x, a, b float64) float64 {
	t := Unmix(x, a, b)
	return t * t * (3 - 2*t)
}

// EaseInQuad accelerates from zero: t squared on the unit interval.
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// EaseOutQuad decelerates to zero velocity at t=1.
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return t * (2 - t)
}

// AcosSafe clamps its argument to [-1,1] before calling acos so that
// accumulated floating point error in dot products cannot produce NaN.
func AcosSafe(x float64) float64 {
	return math.Acos(Clamp(x, -1, 1))
}
