// Package spatial provides the neighbor search structures behind bond
// topology and star pairing: a uniform grid hash for bounded-radius
// K-nearest queries and a kd-tree matcher for nearest-unused pairing.
package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

type cellKey [3]int

// Grid is a uniform spatial hash over a fixed point set. Queries within
// maxDist find every true neighbor provided the grid was built with
// cellSize >= maxDist, since then a neighbor can never be more than one
// cell away.
type Grid struct {
	cells    map[cellKey][]int
	points   []r3.Vec
	cellSize float64
}

// NewGrid indexes points into cells of the given size. A non-positive
// cell size yields an empty grid.
func NewGrid(points []r3.Vec, cellSize float64) *Grid {
	g := &Grid{
		cells:    make(map[cellKey][]int, len(points)),
		points:   points,
		cellSize: cellSize,
	}
	if cellSize <= 0 {
		return g
	}
	for i, p := range points {
		k := g.key(p)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

func (g *Grid) key(p r3.Vec) cellKey {
	return cellKey{
		int(math.Floor(p.X / g.cellSize)),
		int(math.Floor(p.Y / g.cellSize)),
		int(math.Floor(p.Z / g.cellSize)),
	}
}

// Neighbor is a candidate returned by a grid query.
type Neighbor struct {
	Index int
	Dist  float64
}

// NearestK returns up to k points within maxDist of point i, sorted by
// ascending distance. The queried point itself is excluded. K-selection
// is not symmetric: i picking j does not imply j picks i.
func (g *Grid) NearestK(i, k int, maxDist float64) []Neighbor {
	if i < 0 || i >= len(g.points) || k <= 0 || g.cellSize <= 0 {
		return nil
	}
	return g.nearestTo(g.points[i], i, k, maxDist)
}

// NearestTo returns up to k indexed points within maxDist of an
// arbitrary query position.
func (g *Grid) NearestTo(p r3.Vec, k int, maxDist float64) []Neighbor {
	if k <= 0 || g.cellSize <= 0 {
		return nil
	}
	return g.nearestTo(p, -1, k, maxDist)
}

func (g *Grid) nearestTo(p r3.Vec, exclude, k int, maxDist float64) []Neighbor {
	center := g.key(p)
	var found []Neighbor
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := cellKey{center[0] + dx, center[1] + dy, center[2] + dz}
				for _, j := range g.cells[key] {
					if j == exclude {
						continue
					}
					d := r3.Norm(r3.Sub(g.points[j], p))
					if d <= maxDist {
						found = append(found, Neighbor{Index: j, Dist: d})
					}
				}
			}
		}
	}
	sort.Slice(found, func(a, b int) bool {
		if found[a].Dist != found[b].Dist {
			return found[a].Dist < found[b].Dist
		}
		return found[a].Index < found[b].Index
	})
	if len(found) > k {
		found = found[:k]
	}
	return found
}
