package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/lattice"
)

func testDescription() Description {
	return Description{
		Corners: sculpt.Path{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Sections: sculpt.CrossSections{
			"profile00": {{X: 0.2, Z: 0.2}, {X: -0.2, Z: 0.2}, {X: -0.2, Z: -0.2}, {X: 0.2, Z: -0.2}},
			"profile01": {{X: 1.2, Z: 0.2}, {X: 0.8, Z: 0.2}, {X: 0.8, Z: -0.2}, {X: 1.2, Z: -0.2}},
			"profile02": {{X: 1.2, Y: 1, Z: 0.2}, {X: 0.8, Y: 1, Z: 0.2}, {X: 0.8, Y: 1, Z: -0.2}, {X: 1.2, Y: 1, Z: -0.2}},
		},
	}
}

func testParams() Params {
	p := DefaultParams()
	p.StarCount = 120
	p.NetworkCap = 60
	return p
}

// batchData flattens a frame into comparable values, dropping the
// owning pointers.
type batchData struct {
	Layer     Layer
	Positions []r3.Vec
	Opacity   float32
}

func flatten(f *Frame) []batchData {
	out := make([]batchData, 0, len(f.Batches))
	for _, b := range f.Batches {
		d := batchData{Layer: b.Layer, Opacity: b.Opacity}
		for _, p := range b.Positions {
			d.Positions = append(d.Positions, r3.Vec{
				X: float64(p.X()), Y: float64(p.Y()), Z: float64(p.Z()),
			})
		}
		out = append(out, d)
	}
	return out
}

func TestSessionDerivations(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	d := s.Descriptor()
	assert.Equal(t, lattice.SC, d.Type)
	assert.InDelta(t, 1.0, d.Constant, 1e-12)
	assert.NotEmpty(t, s.LatticePoints())
	assert.NotEmpty(t, s.Bonds())
	assert.Len(t, s.Stars(), 120)
	assert.NotNil(t, s.Spline())

	// The first path corner anchors the lattice, so the origin is in.
	found := false
	for _, p := range s.LatticePoints() {
		if r3.Norm(p) < 1e-9 {
			found = true
			break
		}
	}
	assert.True(t, found, "origin missing from lattice")
}

func TestSessionDeterminism(t *testing.T) {
	a := NewSession(testDescription(), testParams(), nil)
	defer a.Dispose()
	b := NewSession(testDescription(), testParams(), nil)
	defer b.Dispose()

	require.Equal(t, a.Stars(), b.Stars(), "star pools diverge")
	require.Equal(t, a.LatticePoints(), b.LatticePoints())
	require.Equal(t, a.Bonds(), b.Bonds())

	for ch := Chapter(0); ch < NumChapters; ch++ {
		for _, progress := range []float64{0, 10, 33, 50, 68, 90, 100} {
			fa := a.Evaluate(ch, progress)
			fb := b.Evaluate(ch, progress)
			require.Equal(t, flatten(fa), flatten(fb),
				"chapter %s progress %g differs between sessions", ch, progress)
			require.Equal(t, fa.Flash, fb.Flash)
			require.Equal(t, fa.PathBlend, fb.PathBlend)
		}
	}
}

func TestSessionScrubIdempotent(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	for ch := Chapter(0); ch < NumChapters; ch++ {
		first := flatten(s.Evaluate(ch, 30))
		s.Evaluate(ch, 80)
		s.Evaluate(ch, 5)
		again := flatten(s.Evaluate(ch, 30))
		require.Equal(t, first, again, "chapter %s not idempotent at 30", ch)
	}
}

func TestSessionProgressClamped(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	low := s.Evaluate(ChapterPoints, -5)
	assert.Equal(t, 0.0, low.Progress)
	high := s.Evaluate(ChapterPoints, 250)
	assert.Equal(t, sculpt.ProgressMax, high.Progress)
}

func TestBatchDisposedOnReplace(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)

	f1 := s.Evaluate(ChapterPoints, 60) // explosion: stars layer live
	stars := f1.Batch(LayerStars)
	require.NotNil(t, stars)
	require.False(t, stars.Disposed())

	f2 := s.Evaluate(ChapterPoints, 70) // settle: stars layer replaced
	assert.True(t, stars.Disposed(), "replaced batch still live")
	replacement := f2.Batch(LayerStars)
	require.NotNil(t, replacement)
	assert.False(t, replacement.Disposed())

	// Scrubbing to a window without the layer also disposes it.
	s.Evaluate(ChapterPoints, 10)
	assert.True(t, replacement.Disposed())

	s.Dispose()
}

func TestSessionDispose(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	f := s.Evaluate(ChapterStructure, 80)
	live := f.Batches
	require.NotEmpty(t, live)

	s.Dispose()
	for _, b := range live {
		assert.True(t, b.Disposed())
	}
	after := s.Evaluate(ChapterStructure, 80)
	assert.Empty(t, after.Batches)
	assert.Nil(t, after.Mesh)

	// Double dispose is a no-op.
	s.Dispose()
}

func TestSessionDegenerateDescription(t *testing.T) {
	s := NewSession(Description{}, testParams(), nil)
	defer s.Dispose()

	assert.Empty(t, s.LatticePoints())
	assert.Empty(t, s.Stars())
	for ch := Chapter(0); ch < NumChapters; ch++ {
		for _, progress := range []float64{0, 40, 100} {
			f := s.Evaluate(ch, progress)
			require.NotNil(t, f)
			for _, b := range f.Batches {
				assert.False(t, b.Disposed())
			}
		}
	}
}

func TestProfiledChapterMesh(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	mid := s.Evaluate(ChapterProfiled, 35)
	require.NotNil(t, mid.Mesh)
	assert.InDelta(t, 0.35, mid.Mesh.Options.LoftProgress, 1e-12)
	assert.Greater(t, mid.Mesh.Sweep, 0.0)
	assert.Less(t, mid.Mesh.Sweep, 1.0)
	assert.Equal(t, 0.0, mid.Mesh.ColorBlend)

	done := s.Evaluate(ChapterProfiled, 100)
	require.NotNil(t, done.Mesh)
	assert.Equal(t, 1.0, done.Mesh.Sweep)
	assert.Equal(t, 1.0, done.Mesh.ColorBlend)
	assert.Equal(t, 1.0, done.Mesh.Options.LoftProgress)
	assert.Equal(t, 1.0, done.PathBlend)
}

func TestCurvedChapterPathBlend(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	for _, progress := range []float64{0, 25, 50, 75, 100} {
		f := s.Evaluate(ChapterCurved, progress)
		assert.InDelta(t, progress/sculpt.ProgressMax, f.PathBlend, 1e-12)
	}
}

func TestPointsChapterFlashPeak(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	// Window midpoint of the collision phase (35..55).
	f := s.Evaluate(ChapterPoints, 45)
	assert.InDelta(t, 1.0, f.Flash, 1e-9)
	assert.Equal(t, 0.0, s.Evaluate(ChapterPoints, 10).Flash)
}

// The session builds its spline closed, so the polyline side of the
// skeleton blend must close too: both ends of the parameter meet at the
// first corner for every blend value, and the closing edge is part of
// the sampled skeleton.
func TestSkeletonBlendSeamCloses(t *testing.T) {
	s := NewSession(testDescription(), testParams(), nil)
	defer s.Dispose()

	for _, blend := range []float64{0, 0.5, 1} {
		start := s.blendedPoint(0, blend)
		end := s.blendedPoint(1, blend)
		assert.InDelta(t, 0.0, dist(start, end), 1e-9,
			"blend %g: seam gap between %v and %v", blend, start, end)
	}
	// Unit square loop: u=7/8 is halfway down the closing edge.
	got := s.blendedPoint(7.0/8, 0)
	assert.InDelta(t, 0.0, dist(got, r3.Vec{X: 0, Y: 0.5}), 1e-9)
}

func TestStructureChapterHullWireframe(t *testing.T) {
	// Non-coplanar corners so the hull has edges.
	desc := Description{Corners: sculpt.Path{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1},
	}}
	s := NewSession(desc, testParams(), nil)
	defer s.Dispose()

	// The wireframe fades in with the lattice and stays through the pull.
	fade := s.Evaluate(ChapterStructure, 45)
	b := fade.Batch(LayerHull)
	require.NotNil(t, b)
	assert.Equal(t, len(s.Hull().Wireframe()), b.Len())
	assert.Greater(t, b.Opacity, float32(0))
	assert.Less(t, b.Opacity, float32(hullOpacity))

	pull := s.Evaluate(ChapterStructure, 80)
	require.NotNil(t, pull.Batch(LayerHull))
	assert.Equal(t, float32(hullOpacity), pull.Batch(LayerHull).Opacity)

	// Before the lattice phase the wireframe is hidden.
	assert.Nil(t, s.Evaluate(ChapterStructure, 10).Batch(LayerHull))

	// Planar paths have a degenerate hull and no wireframe at all.
	flat := NewSession(testDescription(), testParams(), nil)
	defer flat.Dispose()
	assert.Nil(t, flat.Evaluate(ChapterStructure, 45).Batch(LayerHull))
}

func TestCameraPath(t *testing.T) {
	// Non-coplanar corners so the hull produces real viewpoints.
	desc := Description{Corners: sculpt.Path{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1},
	}}
	s := NewSession(desc, testParams(), nil)
	defer s.Dispose()
	require.NotEmpty(t, s.Viewpoints())

	cam := s.Camera()
	p0, target := cam.State()
	assert.Equal(t, s.corners.Centroid(), target)

	cam.Advance(3)
	p1, _ := cam.State()
	assert.NotEqual(t, p0, p1, "camera did not move")

	cam.Restart()
	p2, _ := cam.State()
	assert.Equal(t, p0, p2, "restart did not rewind the flight")

	// Negative deltas are ignored.
	cam.Advance(-1)
	p3, _ := cam.State()
	assert.Equal(t, p0, p3)
}

func TestZoomAccumulator(t *testing.T) {
	z := &ZoomAccumulator{}
	assert.Equal(t, 0.0, z.Add(0.1))
	assert.Equal(t, 0.0, z.Add(0.1))
	// Third increment crosses the default threshold and releases.
	assert.InDelta(t, 0.3, z.Add(0.1), 1e-12)
	assert.Equal(t, 0.0, z.Add(-0.2))
	z.Reset()
	assert.Equal(t, 0.0, z.Add(0.2))
}
