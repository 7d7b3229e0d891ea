// Package story drives the slider-controlled chapters of the sculpture
// viewer. A Session owns every structural derivation (lattice, star
// pool, bonds, hull, spline) and maps (chapter, progress) pairs to
// frames as a pure function, so scrubbing a slider backward retraces
// exactly what scrubbing forward produced.
package story

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/curve"
	"github.com/ABakker30/sculpture-story-sub001/hull"
	"github.com/ABakker30/sculpture-story-sub001/lattice"
)

// Description is the parsed sculpture handed over by the asset loader.
type Description struct {
	// Corners is the ordered sculpture path skeleton.
	Corners sculpt.Path
	// Curve optionally carries a pre-smoothed resampling of the path.
	Curve []r3.Vec
	// Sections maps section identifiers to closed profile polygons.
	Sections sculpt.CrossSections
}

// Params tune the procedural derivations of a session.
type Params struct {
	// StarCount is the cosmic star pool size.
	StarCount int
	// Seed feeds the one-time star pool generation.
	Seed int64
	// GalaxyScale multiplies the path bounding radius into the lattice
	// generation radius. Bounded to keep enumeration tractable.
	GalaxyScale float64
	// BondTolerance is the neighbor distance slack over the lattice
	// constant.
	BondTolerance float64
	// NetworkCap bounds the point count of the Paths chapter network.
	NetworkCap int
	// CurveTension shapes the spline through the path corners.
	CurveTension float64
}

// DefaultParams returns the tuning used by the reference sculpture.
func DefaultParams() Params {
	return Params{
		StarCount:     1200,
		Seed:          1,
		GalaxyScale:   3,
		BondTolerance: lattice.DefaultBondTolerance,
		NetworkCap:    1000,
		CurveTension:  0,
	}
}

// maxGalaxyScale caps the lattice radius multiplier; beyond it the
// integer enumeration span grows cubically for no visual gain.
const maxGalaxyScale = 10.0

// Session owns the derived data of one loaded sculpture and the only
// mutable animation state (camera time, zoom hysteresis). All derived
// slices are read-only after construction; chapters only read them and
// produce transient instance batches.
type Session struct {
	params Params
	log    *zap.Logger

	corners  sculpt.Path
	sections [][]r3.Vec

	descriptor lattice.Descriptor
	latticePts []r3.Vec
	bonds      []lattice.Bond
	stars      []r3.Vec
	hull       *hull.Hull
	views      []hull.Viewpoint
	spline     *curve.Spline

	camera CameraPath
	zoom   ZoomAccumulator

	// memoized Paths-chapter network.
	netBuilt bool
	netNodes []r3.Vec
	netEdges [][2]int

	live     [numLayers]*InstanceBatch
	disposed bool
}

// NewSession derives all structural data from the description. A nil
// logger is replaced with a no-op logger. Degenerate descriptions are
// usable; their chapters render nothing.
func NewSession(desc Description, params Params, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if params.StarCount <= 0 {
		params.StarCount = DefaultParams().StarCount
	}
	if params.BondTolerance <= 0 {
		params.BondTolerance = lattice.DefaultBondTolerance
	}
	if params.GalaxyScale <= 0 {
		params.GalaxyScale = DefaultParams().GalaxyScale
	}
	if params.GalaxyScale > maxGalaxyScale {
		params.GalaxyScale = maxGalaxyScale
	}
	if params.NetworkCap <= 0 {
		params.NetworkCap = DefaultParams().NetworkCap
	}

	s := &Session{
		params:  params,
		log:     log,
		corners: desc.Corners.Dedup(),
	}
	s.sections = desc.Sections.Ordered()

	s.descriptor = lattice.Infer(s.corners)
	center := s.corners.Centroid()
	radius := s.corners.BoundingRadius() * params.GalaxyScale
	if radius > 0 {
		s.latticePts = lattice.Points(center, radius, s.descriptor.Constant, s.corners)
		s.bonds = lattice.Bonds(s.latticePts, s.descriptor.Constant, params.BondTolerance)
	} else {
		log.Warn("degenerate sculpture path, lattice disabled",
			zap.Int("corners", len(s.corners)))
	}

	pool := generateStarPool(params.StarCount, center, radius*2, params.Seed)
	s.stars = pairStars(s.latticePts, pool)

	s.hull = hull.New(s.corners)
	s.views = s.hull.Viewpoints()
	if len(s.views) == 0 && len(s.corners) > 0 {
		log.Debug("hull degenerate, no canonical viewpoints")
	}

	splinePts := desc.Curve
	if len(splinePts) == 0 {
		splinePts = s.corners
	}
	s.spline = curve.NewSpline(splinePts, true, params.CurveTension)

	s.camera.session = s
	return s
}

// Descriptor returns the inferred lattice descriptor.
func (s *Session) Descriptor() lattice.Descriptor { return s.descriptor }

// LatticePoints returns the derived lattice point set. Read-only.
func (s *Session) LatticePoints() []r3.Vec { return s.latticePts }

// Bonds returns the derived bond topology. Read-only.
func (s *Session) Bonds() []lattice.Bond { return s.bonds }

// Stars returns the paired cosmic star pool. Read-only.
func (s *Session) Stars() []r3.Vec { return s.stars }

// Hull returns the convex hull over the path corners.
func (s *Session) Hull() *hull.Hull { return s.hull }

// Viewpoints returns the canonical camera viewpoints.
func (s *Session) Viewpoints() []hull.Viewpoint { return s.views }

// Spline returns the smooth curve through the sculpture path.
func (s *Session) Spline() *curve.Spline { return s.spline }

// Camera returns the time-accumulating camera path state.
func (s *Session) Camera() *CameraPath { return &s.camera }

// Zoom returns the wheel/pinch hysteresis accumulator.
func (s *Session) Zoom() *ZoomAccumulator { return &s.zoom }

// Evaluate produces the frame for a chapter at progress in [0,100].
// The previous frame's batches for the layers being replaced are
// disposed synchronously before the new ones are published.
func (s *Session) Evaluate(ch Chapter, progress float64) *Frame {
	if s.disposed {
		return &Frame{Chapter: ch, Progress: progress}
	}
	progress = sculpt.Clamp(progress, 0, sculpt.ProgressMax)
	f := &Frame{
		Chapter:      ch,
		Progress:     progress,
		CameraTarget: s.corners.Centroid(),
	}
	phases := s.chapterPhases(ch)
	if phases == nil {
		s.log.Debug("unknown chapter", zap.Int("chapter", int(ch)))
		s.retire(f)
		return f
	}
	runPhases(phases, s, f, progress)
	s.retire(f)
	return f
}

// retire publishes the frame's batches, disposing every previously
// live batch that is not part of the new frame first. Stale instances
// from an abandoned phase never survive a scrub.
func (s *Session) retire(f *Frame) {
	var next [numLayers]*InstanceBatch
	for _, b := range f.Batches {
		next[b.Layer] = b
	}
	for l := Layer(0); l < numLayers; l++ {
		if prev := s.live[l]; prev != nil && prev != next[l] {
			prev.dispose()
		}
		s.live[l] = next[l]
	}
}

// Dispose releases every live batch. Further Evaluate calls return
// empty frames.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	for l := range s.live {
		if s.live[l] != nil {
			s.live[l].dispose()
			s.live[l] = nil
		}
	}
	s.disposed = true
}

// newBatch allocates the transform slices for n instances of a layer.
func newBatch(l Layer, n int) *InstanceBatch {
	return &InstanceBatch{
		Layer:     l,
		Positions: make([]mgl32.Vec3, 0, n),
		Rotations: make([]mgl32.Quat, 0, n),
		Scales:    make([]mgl32.Vec3, 0, n),
		Opacity:   1,
	}
}

// push appends one instance transform to the batch.
func (b *InstanceBatch) push(pos, scale mgl32.Vec3, rot mgl32.Quat) {
	b.Positions = append(b.Positions, pos)
	b.Rotations = append(b.Rotations, rot)
	b.Scales = append(b.Scales, scale)
}
