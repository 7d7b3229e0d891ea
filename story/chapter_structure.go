package story

import (
	"github.com/go-gl/mathgl/mgl32"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
)

// The Structure chapter grows the skeleton tube, fades the lattice in
// around the star field and pulls the paired stars onto their lattice
// targets.
var structurePhases = []phase{
	{0, 30, renderStructureTube},
	{30, 60, renderStructureLattice},
	{60, 100, renderStructurePull},
}

// tubeRadius is the full skeleton tube radius, derived from the first
// cross-section when present.
func (s *Session) tubeRadius() float64 {
	if len(s.sections) > 0 && len(s.sections[0]) > 0 {
		c := s.sections[0]
		sum := 0.0
		ctr := sculpt.Path(c).Centroid()
		for _, v := range c {
			sum += dist(v, ctr)
		}
		return sum / float64(len(c))
	}
	return s.descriptor.Constant * 0.15
}

// tubeBatch renders the skeleton as segment instances along the path
// blended between polyline and natural curve, revealed up to sweep.
func (s *Session) tubeBatch(blend, sweep, radius float64) *InstanceBatch {
	if len(s.corners) < 2 || radius <= 0 {
		return nil
	}
	const samples = 64
	b := newBatch(LayerTube, samples)
	limit := sculpt.Clamp01(sweep) * samples
	for i := 0; i < samples; i++ {
		reveal := sculpt.Clamp01(limit - float64(i))
		if reveal == 0 {
			break
		}
		u0 := float64(i) / samples
		u1 := float64(i+1) / samples
		from := s.blendedPoint(u0, blend)
		to := s.blendedPoint(u1, blend)
		pushSegment(b, from, to, reveal, 2*radius)
	}
	return b
}

func renderStructureTube(s *Session, f *Frame, t float64) {
	if b := s.starLatticeBlend(0); b != nil {
		f.Batches = append(f.Batches, b)
	}
	// Tube inflates to full radius before anything else happens.
	if b := s.tubeBatch(0, 1, s.tubeRadius()*t); b != nil {
		f.Batches = append(f.Batches, b)
	}
}

func renderStructureLattice(s *Session, f *Frame, t float64) {
	if b := s.starLatticeBlend(0); b != nil {
		f.Batches = append(f.Batches, b)
	}
	if b := s.tubeBatch(0, 1, s.tubeRadius()); b != nil {
		f.Batches = append(f.Batches, b)
	}
	f.Batches = append(f.Batches, s.latticeBatches(float32(t), 1)...)
	if b := s.hullBatch(hullOpacity * float32(t)); b != nil {
		f.Batches = append(f.Batches, b)
	}
}

// renderStructurePull eases the paired stars onto their lattice
// targets with the quadratic ramp.
func renderStructurePull(s *Session, f *Frame, t float64) {
	if b := s.tubeBatch(0, 1, s.tubeRadius()); b != nil {
		f.Batches = append(f.Batches, b)
	}
	f.Batches = append(f.Batches, s.latticeBatches(1, 1)...)
	if b := s.hullBatch(hullOpacity); b != nil {
		f.Batches = append(f.Batches, b)
	}
	if b := s.starLatticeBlend(sculpt.EaseInQuad(t)); b != nil {
		f.Batches = append(f.Batches, b)
	}
}

// hullOpacity keeps the hull wireframe a faint framing guide behind the
// lattice.
const hullOpacity = 0.25

// hullBatch renders the convex hull wireframe as segment instances.
// Degenerate hulls (planar or collinear paths) have no edges and yield
// no batch.
func (s *Session) hullBatch(opacity float32) *InstanceBatch {
	if opacity <= 0 {
		return nil
	}
	edges := s.hull.Wireframe()
	if len(edges) == 0 {
		return nil
	}
	b := newBatch(LayerHull, len(edges))
	girth := s.descriptor.Constant * 0.04
	for _, e := range edges {
		pushSegment(b, e[0], e[1], 1, girth)
	}
	b.Opacity = opacity
	return b
}

// latticeBatches renders the lattice spheres and bonds at the given
// opacity and scale.
func (s *Session) latticeBatches(opacity, scale float32) []*InstanceBatch {
	if len(s.latticePts) == 0 || opacity <= 0 || scale <= 0 {
		return nil
	}
	spheres := newBatch(LayerLattice, len(s.latticePts))
	for _, p := range s.latticePts {
		spheres.push(vec32(p), mgl32.Vec3{scale, scale, scale}, identityQuat())
	}
	spheres.Opacity = opacity
	girth := s.descriptor.Constant * 0.08 * float64(scale)
	bonds := newBatch(LayerBonds, len(s.bonds))
	for _, bond := range s.bonds {
		pushSegment(bonds, s.latticePts[bond.A], s.latticePts[bond.B], 1, girth)
	}
	bonds.Opacity = opacity
	return []*InstanceBatch{spheres, bonds}
}
