package loft

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// DefaultResample is the vertex count sections are resampled to when
// the caller does not pick one.
const DefaultResample = 32

// Resample redistributes n vertices along the closed polygon boundary
// using fractional-index linear interpolation. Fewer than two input
// vertices or n < 3 returns nil.
func Resample(section []r3.Vec, n int) []r3.Vec {
	if len(section) < 2 || n < 3 {
		return nil
	}
	out := make([]r3.Vec, n)
	m := float64(len(section))
	for i := 0; i < n; i++ {
		// Fractional index along the closed boundary.
		f := float64(i) / float64(n) * m
		j := int(f)
		frac := f - float64(j)
		a := section[j%len(section)]
		b := section[(j+1)%len(section)]
		out[i] = d3.Lerp(a, b, frac)
	}
	return out
}

func centroid(section []r3.Vec) r3.Vec {
	return d3.Centroid(d3.Set(section))
}

// averageRadius is the mean vertex distance from the section centroid.
func averageRadius(section []r3.Vec, c r3.Vec) float64 {
	if len(section) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range section {
		sum += r3.Norm(r3.Sub(v, c))
	}
	return sum / float64(len(section))
}
