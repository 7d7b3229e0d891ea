// Package lattice infers a crystal structure from a sculpture path and
// enumerates bounded lattice point sets and neighbor bonds from it.
//
// The classifier is a heuristic tuned against loosely helical and
// segmented input paths. Two different paths can map to the same
// descriptor and arbitrary paths are not guaranteed a meaningful class.
package lattice

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	sculpt "github.com/ABakker30/sculpture-story-sub001"
)

// Type enumerates the supported crystal structures.
type Type uint8

const (
	// SC is simple cubic: neighbors along orthogonal axes.
	SC Type = iota
	// BCC is body centered cubic: tetrahedral 109.47 degree corners.
	BCC
	// FCC is face centered cubic: alternating 60/120 degree corners.
	FCC
)

func (t Type) String() string {
	switch t {
	case SC:
		return "SC"
	case BCC:
		return "BCC"
	case FCC:
		return "FCC"
	}
	return "unknown"
}

// Descriptor is the inferred crystal structure of a path. Constant is
// the nearest-neighbor distance, the shortest segment of the path.
type Descriptor struct {
	Type     Type
	Constant float64
}

// Angle bins in degrees. The half-width and the 0.3 fraction cutoffs
// below are empirical tuning against the reference sculpture dataset
// and must not be widened.
const (
	binHalfWidth   = 5.0
	angleSC        = 90.0
	angleBCC       = 109.47
	angleFCC60     = 60.0
	angleFCC120    = 120.0
	fractionCutoff = 0.3
)

// Infer classifies the crystal structure implied by an ordered corner
// list and derives the lattice constant. Fewer than two corners yields
// the degenerate descriptor {SC, 1}.
func Infer(corners sculpt.Path) Descriptor {
	corners = corners.Dedup()
	if len(corners) < 2 {
		return Descriptor{Type: SC, Constant: 1}
	}
	segments := corners.SegmentLengths()
	constant := segments[0]
	for _, l := range segments[1:] {
		if l < constant {
			constant = l
		}
	}

	desc := Descriptor{Type: classifyAngles(corners), Constant: constant}
	if desc.Type == SC {
		// Angle histogram was inconclusive or genuinely cubic. A second
		// opinion from distance ratios can still promote to BCC/FCC.
		if t, ok := classifyDistances(corners); ok {
			desc.Type = t
		}
	}
	return desc
}

// classifyAngles bins the corner angles of the path and applies the
// fraction cutoffs in FCC, BCC, SC priority order.
func classifyAngles(corners sculpt.Path) Type {
	var n, c90, c109, c60, c120 int
	for i := 1; i < len(corners)-1; i++ {
		u := r3.Sub(corners[i-1], corners[i])
		v := r3.Sub(corners[i+1], corners[i])
		nu, nv := r3.Norm(u), r3.Norm(v)
		if nu == 0 || nv == 0 {
			continue
		}
		deg := sculpt.AcosSafe(r3.Dot(u, v)/(nu*nv)) * 180 / math.Pi
		n++
		switch {
		case math.Abs(deg-angleSC) <= binHalfWidth:
			c90++
		case math.Abs(deg-angleBCC) <= binHalfWidth:
			c109++
		case math.Abs(deg-angleFCC60) <= binHalfWidth:
			c60++
		case math.Abs(deg-angleFCC120) <= binHalfWidth:
			c120++
		}
	}
	if n == 0 {
		return SC
	}
	f90 := float64(c90) / float64(n)
	f109 := float64(c109) / float64(n)
	fFCC := float64(c60+c120) / float64(n)
	switch {
	case fFCC > fractionCutoff && fFCC > f90 && fFCC > f109:
		return FCC
	case f109 > fractionCutoff && f109 > f90:
		return BCC
	case f90 > fractionCutoff:
		return SC
	}
	return SC
}

// Nearest-neighbor distance ratios relative to the median short
// distance for each structure.
const (
	ratioSC  = 1.0
	ratioBCC = 0.87
	ratioFCC = 0.72
	ratioTol = 0.05
)

// classifyDistances bins the ratios of the shortest pairwise distances
// to their median. Reports ok when the BCC or FCC bin outnumbers SC.
func classifyDistances(corners sculpt.Path) (Type, bool) {
	dists := pairwiseDistances(corners)
	if len(dists) < 2 {
		return SC, false
	}
	n := len(dists)
	if n > 20 {
		n = 20
	}
	short := dists[:n]
	median := short[n/2]
	if median == 0 {
		return SC, false
	}
	var cSC, cBCC, cFCC int
	for _, d := range short {
		switch r := d / median; {
		case math.Abs(r-ratioSC) <= ratioTol:
			cSC++
		case math.Abs(r-ratioBCC) <= ratioTol:
			cBCC++
		case math.Abs(r-ratioFCC) <= ratioTol:
			cFCC++
		}
	}
	if cBCC <= cSC && cFCC <= cSC {
		return SC, false
	}
	if cFCC > cBCC {
		return FCC, true
	}
	return BCC, true
}

// pairwiseDistances returns all corner pair distances sorted ascending.
func pairwiseDistances(corners sculpt.Path) []float64 {
	var dists []float64
	for i := 0; i < len(corners); i++ {
		for j := i + 1; j < len(corners); j++ {
			dists = append(dists, r3.Norm(r3.Sub(corners[j], corners[i])))
		}
	}
	sort.Float64s(dists)
	return dists
}
