package lattice

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// parallelCos is the absolute cosine above which two candidate basis
// directions count as parallel and the later one is rejected.
const parallelCos = 0.99

// Basis derives up to three linearly independent basis vectors from the
// consecutive segments of the path, each scaled to constant. Axis
// aligned unit directions fill the remaining slots, subject to the same
// independence test, so three vectors are always returned.
func Basis(corners sculpt.Path, constant float64) [3]r3.Vec {
	var dirs []r3.Vec
	keep := func(dir r3.Vec) {
		if len(dirs) >= 3 {
			return
		}
		u := d3.UnitOrZero(dir, 1e-12)
		if u == (r3.Vec{}) {
			return
		}
		for _, prev := range dirs {
			if math.Abs(r3.Dot(u, prev)) >= parallelCos {
				return
			}
		}
		dirs = append(dirs, u)
	}
	for i := 1; i < len(corners) && len(dirs) < 3; i++ {
		keep(r3.Sub(corners[i], corners[i-1]))
	}
	for _, axis := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		if len(dirs) >= 3 {
			break
		}
		keep(axis)
	}
	var basis [3]r3.Vec
	for i, u := range dirs {
		basis[i] = r3.Scale(constant, u)
	}
	return basis
}

// Points enumerates every lattice point origin + i*b1 + j*b2 + k*b3
// within radius of center. The origin is the first path corner, or the
// center itself for an empty path. Cost is cubic in radius/constant;
// callers bound the radius to keep the enumeration span tractable.
func Points(center r3.Vec, radius, constant float64, corners sculpt.Path) []r3.Vec {
	if radius <= 0 || constant <= 0 {
		return nil
	}
	origin := center
	if len(corners) > 0 {
		origin = corners[0]
	}
	basis := Basis(corners, constant)
	span := int(math.Ceil(radius/constant)) + 1
	pts := make([]r3.Vec, 0, 64)
	for i := -span; i <= span; i++ {
		for j := -span; j <= span; j++ {
			for k := -span; k <= span; k++ {
				p := origin
				p = r3.Add(p, r3.Scale(float64(i), basis[0]))
				p = r3.Add(p, r3.Scale(float64(j), basis[1]))
				p = r3.Add(p, r3.Scale(float64(k), basis[2]))
				if r3.Norm(r3.Sub(p, center)) <= radius {
					pts = append(pts, p)
				}
			}
		}
	}
	return pts
}
