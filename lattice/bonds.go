package lattice

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/spatial"
)

// DefaultBondTolerance is the neighbor distance slack applied to the
// lattice constant when none is configured. Sensible values sit in the
// 1.02 to 1.1 range.
const DefaultBondTolerance = 1.05

// bondNeighborCap bounds the per-point K-nearest gather.
const bondNeighborCap = 12

// Bond connects the points at indices A < B. The canonical ordering is
// the dedup key: a pair appears once no matter which endpoint's
// neighbor search proposed it.
type Bond struct {
	A, B int
}

// Bonds connects every point pair within constant*tolerance of each
// other, capped at 12 neighbors per point, deduplicated by canonical
// pair key and sorted for deterministic output.
func Bonds(points []r3.Vec, constant, tolerance float64) []Bond {
	if len(points) < 2 || constant <= 0 || tolerance <= 0 {
		return nil
	}
	maxDist := constant * tolerance
	grid := spatial.NewGrid(points, maxDist)
	seen := make(map[Bond]struct{})
	for i := range points {
		for _, nb := range grid.NearestK(i, bondNeighborCap, maxDist) {
			b := Bond{A: i, B: nb.Index}
			if b.A > b.B {
				b.A, b.B = b.B, b.A
			}
			seen[b] = struct{}{}
		}
	}
	bonds := make([]Bond, 0, len(seen))
	for b := range seen {
		bonds = append(bonds, b)
	}
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].A != bonds[j].A {
			return bonds[i].A < bonds[j].A
		}
		return bonds[i].B < bonds[j].B
	})
	return bonds
}
