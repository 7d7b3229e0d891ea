package story

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// The Paths chapter plays with the star field: trails, constellation
// shapes, a neighbor network, then a flash-to-white handoff into the
// lattice reveal.
var pathsPhases = []phase{
	{0, 5, renderPathsTwinkle},
	{5, 20, renderPathsShooting},
	{20, 35, renderPathsShapes},
	{35, 50, renderPathsNetwork},
	{50, 65, renderPathsContraction},
	{65, 70, renderPathsFlash},
	{70, 100, renderPathsReveal},
}

func renderPathsTwinkle(s *Session, f *Frame, t float64) {
	if len(s.stars) == 0 {
		return
	}
	f.Batches = append(f.Batches, s.twinkleBatch(float32(t), 1))
}

// trailCount is how many shooting stars fly during the trail window.
const trailCount = 8

func renderPathsShooting(s *Session, f *Frame, t float64) {
	if len(s.stars) == 0 {
		return
	}
	f.Batches = append(f.Batches, s.twinkleBatch(float32(t), 0.5))

	n := trailCount
	if 2*n > len(s.stars) {
		n = len(s.stars) / 2
	}
	if n == 0 {
		return
	}
	trails := newBatch(LayerTrails, n)
	girth := s.descriptor.Constant * 0.05
	for i := 0; i < n; i++ {
		// Fixed start/end pairs out of the deterministic pool.
		from := s.stars[2*i]
		to := s.stars[2*i+1]
		// Stagger the launches across the window.
		local := sculpt.Clamp01(t*float64(n)/2 - float64(i)*0.5)
		if local == 0 {
			continue
		}
		head := d3.Lerp(from, to, local)
		tail := d3.Lerp(from, to, sculpt.Clamp01(local-0.15))
		pushSegment(trails, tail, head, 1, girth)
	}
	trails.Opacity = 0.8
	f.Batches = append(f.Batches, trails)
}

// shapeVertices lays a regular n-gon in the XY plane around the path
// centroid, sized by the path extent.
func (s *Session) shapeVertices(n int) []r3.Vec {
	c := s.corners.Centroid()
	radius := s.corners.BoundingRadius()
	if radius <= 0 {
		radius = 1
	}
	out := make([]r3.Vec, n)
	for i := range out {
		theta := 2*math.Pi*float64(i)/float64(n) + math.Pi/2
		out[i] = r3.Add(c, r3.Vec{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
		})
	}
	return out
}

// renderPathsShapes reveals a triangle during the first half of the
// window and a square during the second, one edge after another.
func renderPathsShapes(s *Session, f *Frame, t float64) {
	if len(s.stars) == 0 {
		return
	}
	f.Batches = append(f.Batches, s.twinkleBatch(float32(t), 0.3))

	var verts []r3.Vec
	var local float64
	if t < 0.5 {
		verts = s.shapeVertices(3)
		local = t / 0.5
	} else {
		verts = s.shapeVertices(4)
		local = (t - 0.5) / 0.5
	}
	n := len(verts)
	shapes := newBatch(LayerShapes, n)
	girth := s.descriptor.Constant * 0.05
	for e := 0; e < n; e++ {
		// Per-edge reveal: edge e draws during its slice of the window.
		reveal := sculpt.Unmix(local, float64(e)/float64(n), float64(e+1)/float64(n))
		pushSegment(shapes, verts[e], verts[(e+1)%n], reveal, girth)
	}
	f.Batches = append(f.Batches, shapes)
}

func renderPathsNetwork(s *Session, f *Frame, t float64) {
	nodes, edges := s.network()
	if len(nodes) == 0 {
		return
	}
	f.Batches = append(f.Batches, s.networkBatches(nodes, edges, t, 0)...)
}

func renderPathsContraction(s *Session, f *Frame, t float64) {
	nodes, edges := s.network()
	if len(nodes) == 0 {
		return
	}
	f.Batches = append(f.Batches, s.networkBatches(nodes, edges, 1, sculpt.EaseInQuad(t))...)
}

// networkBatches renders the star network with edge reveal fraction
// and a contraction factor pulling every node toward the path
// centroid.
func (s *Session) networkBatches(nodes []r3.Vec, edges [][2]int, reveal, contraction float64) []*InstanceBatch {
	focus := s.corners.Centroid()
	moved := make([]r3.Vec, len(nodes))
	for i, p := range nodes {
		moved[i] = d3.Lerp(p, focus, contraction)
	}

	points := newBatch(LayerNetwork, len(moved)+len(edges))
	size := float32(1 - 0.5*contraction)
	for _, p := range moved {
		points.push(vec32(p), mgl32.Vec3{size, size, size}, identityQuat())
	}
	girth := s.descriptor.Constant * 0.03
	shown := reveal * float64(len(edges))
	for ei, e := range edges {
		edgeReveal := sculpt.Clamp01(shown - float64(ei))
		pushSegment(points, moved[e[0]], moved[e[1]], edgeReveal, girth)
	}
	return []*InstanceBatch{points}
}

func renderPathsFlash(s *Session, f *Frame, t float64) {
	// Everything hides behind the white-out.
	f.Flash = math.Sin(math.Pi * t)
}

// renderPathsReveal zooms out of the flash onto the lattice, filtered
// to a growing radius around the path centroid.
func renderPathsReveal(s *Session, f *Frame, t float64) {
	if len(s.latticePts) == 0 {
		return
	}
	center := s.corners.Centroid()
	full := s.corners.BoundingRadius() * s.params.GalaxyScale
	radius := sculpt.Mix(s.descriptor.Constant*1.5, full, t)

	inside := make([]bool, len(s.latticePts))
	spheres := newBatch(LayerLattice, len(s.latticePts))
	size := float32(sculpt.Mix(0.3, 1, t))
	for i, p := range s.latticePts {
		if r3.Norm(r3.Sub(p, center)) > radius {
			continue
		}
		inside[i] = true
		spheres.push(vec32(p), mgl32.Vec3{size, size, size}, identityQuat())
	}
	spheres.Opacity = float32(sculpt.Clamp01(t * 2))
	f.Batches = append(f.Batches, spheres)

	bonds := newBatch(LayerBonds, len(s.bonds))
	girth := s.descriptor.Constant * 0.08
	for _, bond := range s.bonds {
		if !inside[bond.A] || !inside[bond.B] {
			continue
		}
		pushSegment(bonds, s.latticePts[bond.A], s.latticePts[bond.B], 1, girth)
	}
	bonds.Opacity = spheres.Opacity
	f.Batches = append(f.Batches, bonds)
	f.CameraTarget = center
}
