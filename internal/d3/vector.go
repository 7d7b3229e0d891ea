package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector manipulation routines shared by the geometry packages.

// EqualWithin compares vectors component-wise within tolerance tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Lerp linearly interpolates between a and b, t = [0,1].
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Set is a slice of vectors with aggregate helpers.
type Set []r3.Vec

// Centroid returns the mean of a set of vectors. Empty sets map to the
// zero vector.
func Centroid(a Set) r3.Vec {
	if len(a) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, v := range a {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1/float64(len(a)), sum)
}

// UnitOrZero normalizes v, returning the zero vector when v is shorter
// than tol instead of dividing by a vanishing norm.
func UnitOrZero(v r3.Vec, tol float64) r3.Vec {
	n := r3.Norm(v)
	if n <= tol {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
