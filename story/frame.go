package story

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ABakker30/sculpture-story-sub001/loft"
)

// Layer identifies one visual layer of instanced geometry.
type Layer uint8

const (
	// LayerStars is the cosmic star field.
	LayerStars Layer = iota
	// LayerSpheres is the two-sphere collision pair.
	LayerSpheres
	// LayerTrails is the shooting star trails.
	LayerTrails
	// LayerShapes is the geometric shape reveal segments.
	LayerShapes
	// LayerNetwork is the nearest-neighbor network segments.
	LayerNetwork
	// LayerLattice is the lattice point spheres.
	LayerLattice
	// LayerBonds is the lattice bond cylinders.
	LayerBonds
	// LayerTube is the sculpture path tube.
	LayerTube
	// LayerHull is the convex hull wireframe.
	LayerHull
	numLayers
)

func (l Layer) String() string {
	switch l {
	case LayerStars:
		return "stars"
	case LayerSpheres:
		return "spheres"
	case LayerTrails:
		return "trails"
	case LayerShapes:
		return "shapes"
	case LayerNetwork:
		return "network"
	case LayerLattice:
		return "lattice"
	case LayerBonds:
		return "bonds"
	case LayerTube:
		return "tube"
	case LayerHull:
		return "hull"
	}
	return "unknown"
}

// InstanceBatch is the bulk transform set of one layer for one frame.
// Fields are float32 for direct upload to instanced GPU buffers.
type InstanceBatch struct {
	Layer     Layer
	Positions []mgl32.Vec3
	Rotations []mgl32.Quat
	Scales    []mgl32.Vec3
	Opacity   float32

	disposed bool
}

// Len returns the instance count.
func (b *InstanceBatch) Len() int { return len(b.Positions) }

// Disposed reports whether the owning session has released this batch.
// Consumers must not read a disposed batch.
func (b *InstanceBatch) Disposed() bool { return b.disposed }

func (b *InstanceBatch) dispose() {
	b.Positions = nil
	b.Rotations = nil
	b.Scales = nil
	b.disposed = true
}

// vec32 lowers an r3 vector into the batch precision.
func vec32(v r3.Vec) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// quat32 lowers a double precision quaternion into batch precision.
func quat32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{
		W: float32(q.W),
		V: mgl32.Vec3{float32(q.V[0]), float32(q.V[1]), float32(q.V[2])},
	}
}

// identityQuat is the no-rotation orientation.
func identityQuat() mgl32.Quat { return mgl32.QuatIdent() }

// MeshParams describe the loft mesh for the frame, present only when
// the mesh layer is visible.
type MeshParams struct {
	Options loft.Options
	// Sweep in [0,1] is how much of the tube has been revealed along
	// the curve, with a smoothstep-tapered leading edge.
	Sweep float64
	// ColorBlend in [0,1] morphs the placeholder color into the final
	// material color.
	ColorBlend float64
}

// Frame is the full scene description for one chapter at one progress
// value. It is a pure function of (chapter, progress, session data).
type Frame struct {
	Chapter  Chapter
	Progress float64

	// Batches holds one entry per visible layer.
	Batches []*InstanceBatch
	// Mesh is nil while the lofted sculpture is hidden.
	Mesh *MeshParams
	// Flash is the white-out intensity in [0,1].
	Flash float64
	// PathBlend morphs the rendered skeleton from straight polyline
	// (0) to the natural curve (1).
	PathBlend float64

	CameraTarget r3.Vec
}

// Batch returns the batch for a layer, or nil if the layer is hidden
// this frame.
func (f *Frame) Batch(l Layer) *InstanceBatch {
	for _, b := range f.Batches {
		if b.Layer == l {
			return b
		}
	}
	return nil
}
