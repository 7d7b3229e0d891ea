package story

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/curve"
	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
)

// The Points chapter births the star field out of a two-sphere
// collision. Every window is a closed-form function of the slider so
// scrubbing backward re-derives (and the session disposes) whatever a
// later window had produced.
var pointsPhases = []phase{
	{0, 20, renderPointsIdle},
	{20, 35, renderPointsApproach},
	{35, 55, renderPointsCollision},
	{55, 65, renderPointsExplosion},
	{65, 72, renderPointsSettle},
	{72, 100, renderPointsField},
}

// collisionGeometry fixes the sphere endpoints and Bézier arcs of the
// sub-animation relative to the star field extent.
func (s *Session) collisionGeometry() (center r3.Vec, radius float64, startA, ctrlA, startB, ctrlB r3.Vec) {
	center = s.corners.Centroid()
	radius = s.corners.BoundingRadius() * s.params.GalaxyScale * 2
	if radius <= 0 {
		radius = 1
	}
	startA = r3.Add(center, r3.Vec{X: -2 * radius})
	startB = r3.Add(center, r3.Vec{X: 2 * radius})
	ctrlA = r3.Add(center, r3.Vec{X: -radius, Y: radius})
	ctrlB = r3.Add(center, r3.Vec{X: radius, Y: -radius})
	return center, radius, startA, ctrlA, startB, ctrlB
}

func pointsSphereBatch(s *Session, posA, posB r3.Vec, size float64, opacity float32) *InstanceBatch {
	b := newBatch(LayerSpheres, 2)
	scale := mgl32.Vec3{float32(size), float32(size), float32(size)}
	b.push(vec32(posA), scale, identityQuat())
	b.push(vec32(posB), scale, identityQuat())
	b.Opacity = opacity
	return b
}

func renderPointsIdle(s *Session, f *Frame, t float64) {
	_, radius, startA, _, startB, _ := s.collisionGeometry()
	// Resting pulse before the approach begins.
	size := radius * 0.1 * (1 + 0.05*float64(math32.Sin(8*float32(t))))
	f.Batches = append(f.Batches, pointsSphereBatch(s, startA, startB, size, 1))
}

func renderPointsApproach(s *Session, f *Frame, t float64) {
	center, radius, startA, ctrlA, startB, ctrlB := s.collisionGeometry()
	e := sculpt.EaseInQuad(t)
	posA := curve.QuadBezier(startA, ctrlA, center, e)
	posB := curve.QuadBezier(startB, ctrlB, center, e)
	f.Batches = append(f.Batches, pointsSphereBatch(s, posA, posB, radius*0.1, 1))
}

func renderPointsCollision(s *Session, f *Frame, t float64) {
	center, radius, _, _, _, _ := s.collisionGeometry()
	// Overlapping spheres shrink into the flash.
	size := radius * 0.1 * (1 - t)
	f.Flash = math.Sin(math.Pi * t)
	if size > 0 {
		f.Batches = append(f.Batches, pointsSphereBatch(s, center, center, size, float32(1-t)))
	}
}

func renderPointsExplosion(s *Session, f *Frame, t float64) {
	if len(s.stars) == 0 {
		return
	}
	center, _, _, _, _, _ := s.collisionGeometry()
	e := sculpt.EaseOutQuad(t)
	b := newBatch(LayerStars, len(s.stars))
	size := float32(0.2 + 0.8*t)
	for _, star := range s.stars {
		p := d3.Lerp(center, star, e)
		b.push(vec32(p), mgl32.Vec3{size, size, size}, identityQuat())
	}
	f.Batches = append(f.Batches, b)
}

func renderPointsSettle(s *Session, f *Frame, t float64) {
	if len(s.stars) == 0 {
		return
	}
	b := s.twinkleBatch(float32(t), 1)
	b.Opacity = float32(sculpt.Mix(0.6, 1, t))
	f.Batches = append(f.Batches, b)
}

// renderPointsField blends the settled cosmic field toward the paired
// lattice positions. The window-local parameter is the cosmic scale:
// both the per-star lerp and the instance count blend ride on it.
func renderPointsField(s *Session, f *Frame, t float64) {
	b := s.starLatticeBlend(t)
	if b == nil {
		return
	}
	f.Batches = append(f.Batches, b)
}

// starLatticeBlend produces the star batch at cosmic scale in [0,1]:
// star i moves along lerp(cosmic_i, lattice_i, scale) for paired stars
// while the instance count blends from the cosmic count down (or up)
// to the lattice count. Nil when the star pool is empty.
func (s *Session) starLatticeBlend(scale float64) *InstanceBatch {
	if len(s.stars) == 0 {
		return nil
	}
	scale = sculpt.Clamp01(scale)
	paired := len(s.latticePts)
	if paired > len(s.stars) {
		paired = len(s.stars)
	}
	count := int(math.Round(sculpt.Mix(float64(len(s.stars)), float64(paired), scale)))
	if count <= 0 {
		return nil
	}
	b := newBatch(LayerStars, count)
	for i := 0; i < count; i++ {
		p := s.stars[i]
		if i < paired {
			p = d3.Lerp(s.stars[i], s.latticePts[i], scale)
		}
		b.push(vec32(p), mgl32.Vec3{1, 1, 1}, identityQuat())
	}
	return b
}

// twinkleBatch renders the star pool with a per-instance size shimmer.
// phase shifts the shimmer; amplitude scales it.
func (s *Session) twinkleBatch(phase, amplitude float32) *InstanceBatch {
	b := newBatch(LayerStars, len(s.stars))
	for i, star := range s.stars {
		tw := 1 + 0.3*amplitude*math32.Sin(6*phase+0.7*float32(i))
		b.push(vec32(star), mgl32.Vec3{tw, tw, tw}, identityQuat())
	}
	return b
}
