package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Nearest-unused assignment between the cosmic star pool and the
// lattice points. The greedy scan of the reference implementation is
// quadratic; the kd-tree keeps the same pick order (each target claims
// its nearest unused pool point, in target order) at n log n.

// kdPoint carries the pool index through the tree.
type kdPoint struct {
	pos r3.Vec
	idx int
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	switch d {
	case 0:
		return p.pos.X - q.pos.X
	case 1:
		return p.pos.Y - q.pos.Y
	case 2:
		return p.pos.Z - q.pos.Z
	}
	panic("unreachable")
}

func (p kdPoint) Dims() int { return 3 }

func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	return r3.Norm2(r3.Sub(p.pos, q.pos))
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int                      { return len(p) }
func (p kdPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p kdPoints) Pivot(d kdtree.Dim) int {
	return kdPlane{Dim: d, kdPoints: p}.Pivot()
}

type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.kdPoints[i].Compare(p.kdPoints[j], p.Dim) < 0
}
func (p kdPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}
func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}

// MatchNearest pairs each target with its nearest not-yet-claimed pool
// point, processing targets in order. The returned slice maps target
// index to pool index, -1 where the pool ran out.
func MatchNearest(targets, pool []r3.Vec) []int {
	assign := make([]int, len(targets))
	if len(pool) == 0 {
		for i := range assign {
			assign[i] = -1
		}
		return assign
	}
	data := make(kdPoints, len(pool))
	for i, p := range pool {
		data[i] = kdPoint{pos: p, idx: i}
	}
	tree := kdtree.New(data, true)
	used := make([]bool, len(pool))
	for ti, t := range targets {
		assign[ti] = claimNearest(tree, used, pool, t)
	}
	return assign
}

// claimNearest queries progressively wider K until an unclaimed pool
// point appears, falling back to a linear scan once K covers most of
// the pool.
func claimNearest(tree *kdtree.Tree, used []bool, pool []r3.Vec, q r3.Vec) int {
	query := kdPoint{pos: q, idx: -1}
	for k := 4; k < 4*len(pool); k *= 4 {
		if k > len(pool) {
			k = len(pool)
		}
		keep := kdtree.NewNKeeper(k)
		tree.NearestSet(keep, query)
		best, bestDist := -1, math.MaxFloat64
		for _, item := range keep.Heap {
			p, ok := item.Comparable.(kdPoint)
			if !ok || used[p.idx] {
				continue
			}
			if item.Dist < bestDist {
				best, bestDist = p.idx, item.Dist
			}
		}
		if best >= 0 {
			used[best] = true
			return best
		}
		if k == len(pool) {
			break
		}
	}
	// Pool exhausted within the tree query; scan what remains.
	best, bestDist := -1, math.MaxFloat64
	for i, p := range pool {
		if used[i] {
			continue
		}
		if d := r3.Norm2(r3.Sub(p, q)); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		used[best] = true
	}
	return best
}
