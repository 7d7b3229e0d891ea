package story

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/curve"
)

// Chapter names one slider-driven visual phase of the story.
type Chapter uint8

const (
	// ChapterPoints is the cosmic star field birth.
	ChapterPoints Chapter = iota
	// ChapterPaths is the constellation and network play.
	ChapterPaths
	// ChapterStructure grows the tube and the lattice.
	ChapterStructure
	// ChapterCurved dissolves the lattice and bends the skeleton.
	ChapterCurved
	// ChapterProfiled sweeps the lofted sculpture mesh.
	ChapterProfiled
	// NumChapters is the count of scrubbable chapters; the composed
	// Story chapter sequences them and is not included.
	NumChapters = iota
)

func (c Chapter) String() string {
	switch c {
	case ChapterPoints:
		return "points"
	case ChapterPaths:
		return "paths"
	case ChapterStructure:
		return "structure"
	case ChapterCurved:
		return "curved"
	case ChapterProfiled:
		return "profiled"
	}
	return "unknown"
}

// phase is one contiguous progress window of a chapter. render receives
// the window-local parameter t in [0,1] and must be a closed-form
// function of it: no accumulation, so backward scrubbing is exact.
type phase struct {
	start, end float64
	render     func(s *Session, f *Frame, t float64)
}

// runPhases selects the window containing progress from the ordered
// descriptor list and renders it. The final window is closed on the
// right so progress 100 still selects it.
func runPhases(phases []phase, s *Session, f *Frame, progress float64) {
	for i, p := range phases {
		last := i == len(phases)-1
		if progress >= p.start && (progress < p.end || last) {
			p.render(s, f, sculpt.Unmix(progress, p.start, p.end))
			return
		}
	}
}

func (s *Session) chapterPhases(ch Chapter) []phase {
	switch ch {
	case ChapterPoints:
		return pointsPhases
	case ChapterPaths:
		return pathsPhases
	case ChapterStructure:
		return structurePhases
	case ChapterCurved:
		return curvedPhases
	case ChapterProfiled:
		return profiledPhases
	}
	return nil
}

func dist(a, b r3.Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

// blendedPoint samples the skeleton at arc-length fraction u, blended
// between the straight corner polyline and the natural curve.
func (s *Session) blendedPoint(u, blend float64) r3.Vec {
	return curve.Blend(s.corners, s.spline, u, blend)
}

// alignX returns the batch orientation rotating the unit X axis onto
// dir. Used for segment instances (bonds, trails, network edges).
func alignX(dir r3.Vec) mgl32.Quat {
	n := r3.Norm(dir)
	if n == 0 {
		return identityQuat()
	}
	q := mgl64.QuatBetweenVectors(
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{dir.X / n, dir.Y / n, dir.Z / n},
	)
	return quat32(q)
}

// pushSegment appends one revealed line segment between a and b as an
// instance: position at the midpoint of the revealed part, X scaled to
// the revealed length, girth on Y/Z.
func pushSegment(b *InstanceBatch, from, to r3.Vec, reveal, girth float64) {
	reveal = sculpt.Clamp01(reveal)
	if reveal == 0 {
		return
	}
	end := r3.Add(from, r3.Scale(reveal, r3.Sub(to, from)))
	mid := r3.Scale(0.5, r3.Add(from, end))
	length := r3.Norm(r3.Sub(end, from))
	b.push(
		vec32(mid),
		mgl32.Vec3{float32(length), float32(girth), float32(girth)},
		alignX(r3.Sub(to, from)),
	)
}
