package story

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/spatial"
)

// networkNeighbors is the per-node degree of the Paths chapter network.
const networkNeighbors = 3

// network memoizes the nearest-3-neighbor graph over the star pool,
// capped at the configured node limit. The scheduling model is a
// single event loop, so the memoization needs no locking.
func (s *Session) network() ([]r3.Vec, [][2]int) {
	if s.netBuilt {
		return s.netNodes, s.netEdges
	}
	s.netBuilt = true
	nodes := s.stars
	if len(nodes) > s.params.NetworkCap {
		nodes = nodes[:s.params.NetworkCap]
	}
	if len(nodes) < 2 {
		s.netNodes = nodes
		return nodes, nil
	}
	// Reach far enough that isolated stars still find 3 partners.
	maxDist := s.corners.BoundingRadius() * s.params.GalaxyScale
	if maxDist <= 0 {
		maxDist = 1
	}
	grid := spatial.NewGrid(nodes, maxDist)
	seen := make(map[[2]int]struct{})
	for i := range nodes {
		for _, nb := range grid.NearestK(i, networkNeighbors, maxDist) {
			e := [2]int{i, nb.Index}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			seen[e] = struct{}{}
		}
	}
	edges := make([][2]int, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	s.netNodes = nodes
	s.netEdges = edges
	return nodes, edges
}
