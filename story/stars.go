package story

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/spatial"
)

// generateStarPool fills a spherical volume with n uniformly
// distributed points. The generator is seeded so the pool is identical
// across sessions with the same configuration.
func generateStarPool(n int, center r3.Vec, radius float64, seed int64) []r3.Vec {
	if n <= 0 || radius <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	pool := make([]r3.Vec, 0, n)
	for len(pool) < n {
		// Rejection sample the unit sphere to stay uniform.
		v := r3.Vec{
			X: 2*rng.Float64() - 1,
			Y: 2*rng.Float64() - 1,
			Z: 2*rng.Float64() - 1,
		}
		if r3.Norm2(v) > 1 {
			continue
		}
		pool = append(pool, r3.Add(center, r3.Scale(radius, v)))
	}
	return pool
}

// pairStars reorders the cosmic pool so that stars[i] is the pool point
// nearest to latticePts[i] among points not yet claimed. Interpolating
// star i toward lattice point i then reads as a coherent contraction
// instead of jitter. Unmatched pool points are appended in pool order.
func pairStars(latticePts, pool []r3.Vec) []r3.Vec {
	if len(pool) == 0 {
		return nil
	}
	assign := spatial.MatchNearest(latticePts, pool)
	taken := make([]bool, len(pool))
	out := make([]r3.Vec, 0, len(pool))
	for _, pi := range assign {
		if pi < 0 {
			break
		}
		out = append(out, pool[pi])
		taken[pi] = true
	}
	for i, p := range pool {
		if !taken[i] {
			out = append(out, p)
		}
	}
	return out
}
