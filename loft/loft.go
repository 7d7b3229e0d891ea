// Package loft turns an ordered sequence of closed cross-sections into
// a single closed tube mesh, with continuous blending toward circular
// profiles and straightening toward the sculpture path polyline.
package loft

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/internal/d3"
	"github.com/ABakker30/sculpture-story-sub001/render"
)

// circleBlendStart is the loft progress above which profiles begin
// morphing toward regular circles. The blend is linear over the
// remaining (circleBlendStart, 1] window.
const circleBlendStart = 0.95

// Options shape the per-section transform applied before
// triangulation.
type Options struct {
	// Scale collapses each section toward its centroid: 0 keeps full
	// size, 1 collapses to a point.
	Scale float64
	// LoftProgress in [0,1] drives the circle blend window.
	LoftProgress float64
	// Straighten in [0,1] pulls section centroids onto the corner
	// polyline, preserving the profile shape.
	Straighten float64
	// Resample is the vertex count each section is redistributed to.
	// Zero keeps original counts; mixed counts then yield an empty
	// mesh.
	Resample int
}

// CircleBlend maps loft progress to the circular morph factor:
// zero up to the blend window, then linear to 1.
func CircleBlend(loftProgress float64) float64 {
	return sculpt.Clamp01((loftProgress - circleBlendStart) / (1 - circleBlendStart))
}

// TransformSections applies the straighten, scale and circle-blend
// stages to every section. The returned sections all share a vertex
// count; nil is returned for degenerate input.
func TransformSections(sections [][]r3.Vec, opts Options, corners sculpt.Path) [][]r3.Vec {
	if len(sections) < 2 {
		return nil
	}
	prepared := make([][]r3.Vec, 0, len(sections))
	if opts.Resample > 0 {
		for _, sec := range sections {
			rs := Resample(sec, opts.Resample)
			if rs == nil {
				return nil
			}
			prepared = append(prepared, rs)
		}
	} else {
		want := len(sections[0])
		if want < 2 {
			return nil
		}
		for _, sec := range sections {
			if len(sec) != want {
				return nil
			}
			prepared = append(prepared, append([]r3.Vec(nil), sec...))
		}
	}

	// Relocate centroids first so tangents see the straightened
	// backbone.
	centers := make([]r3.Vec, len(prepared))
	for i, sec := range prepared {
		c := centroid(sec)
		target := c
		if len(corners) > 0 {
			target, _ = corners.Nearest(c)
		}
		moved := d3.Lerp(c, target, sculpt.Clamp01(opts.Straighten))
		delta := r3.Sub(moved, c)
		for j := range sec {
			sec[j] = r3.Add(sec[j], delta)
		}
		centers[i] = moved
	}

	scale := sculpt.Clamp01(opts.Scale)
	blend := CircleBlend(opts.LoftProgress)
	for i, sec := range prepared {
		c := centers[i]
		for j := range sec {
			sec[j] = d3.Lerp(sec[j], c, scale)
		}
		if blend > 0 {
			blendToCircle(sec, c, sectionTangent(centers, i), blend)
		}
	}
	return prepared
}

// sectionTangent estimates the backbone tangent at section i from its
// neighbors on the closed section loop.
func sectionTangent(centers []r3.Vec, i int) r3.Vec {
	n := len(centers)
	prev := centers[(i-1+n)%n]
	next := centers[(i+1)%n]
	t := d3.UnitOrZero(r3.Sub(next, prev), 1e-12)
	if t == (r3.Vec{}) {
		t = r3.Vec{Z: 1}
	}
	return t
}

// blendToCircle morphs the section in place toward a regular polygon of
// the section's average radius, oriented by the local tangent frame.
func blendToCircle(sec []r3.Vec, c, tangent r3.Vec, blend float64) {
	radius := averageRadius(sec, c)
	up := r3.Vec{Y: 1}
	if math.Abs(r3.Dot(tangent, up)) > 0.99 {
		up = r3.Vec{Z: 1}
	}
	forward := d3.UnitOrZero(r3.Cross(tangent, up), 1e-12)
	right := d3.UnitOrZero(r3.Cross(tangent, forward), 1e-12)
	n := float64(len(sec))
	for j := range sec {
		theta := 2 * math.Pi * float64(j) / n
		onCircle := r3.Add(c, r3.Add(
			r3.Scale(radius*math.Cos(theta), forward),
			r3.Scale(radius*math.Sin(theta), right),
		))
		sec[j] = d3.Lerp(sec[j], onCircle, blend)
	}
}

// Loft triangulates the transformed sections into a closed tube mesh:
// both the section loop and each profile polygon wrap around. Degenerate
// input yields an empty mesh, never an error.
func Loft(sections [][]r3.Vec, opts Options, corners sculpt.Path) *render.Mesh {
	prepared := TransformSections(sections, opts, corners)
	if prepared == nil {
		return &render.Mesh{}
	}
	ns := len(prepared)
	nv := len(prepared[0])
	mesh := &render.Mesh{
		Positions: make([]r3.Vec, 0, ns*nv),
		UV:        make([]r2.Vec, 0, ns*nv),
		Indices:   make([]int, 0, ns*nv*6),
	}
	for s, sec := range prepared {
		for v, p := range sec {
			mesh.Positions = append(mesh.Positions, p)
			mesh.UV = append(mesh.UV, r2.Vec{
				X: float64(v) / float64(nv),
				Y: float64(s) / float64(ns),
			})
		}
	}
	at := func(s, v int) int { return (s%ns)*nv + (v % nv) }
	for s := 0; s < ns; s++ {
		for v := 0; v < nv; v++ {
			a := at(s, v)
			b := at(s, v+1)
			c := at(s+1, v)
			d := at(s+1, v+1)
			mesh.Indices = append(mesh.Indices, a, c, b)
			mesh.Indices = append(mesh.Indices, b, c, d)
		}
	}
	mesh.ComputeNormals()
	return mesh
}
