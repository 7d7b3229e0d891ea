package story

import sculpt "github.com/ABakker30/sculpture-story-sub001"

// The Curved chapter dissolves the lattice while the angular skeleton
// relaxes into the sculpture's natural curve. The path blend runs over
// the whole chapter; the dissolve finishes halfway through.
var curvedPhases = []phase{
	{0, 50, renderCurvedDissolve},
	{50, 100, renderCurvedMorph},
}

func renderCurvedDissolve(s *Session, f *Frame, t float64) {
	f.PathBlend = f.Progress / sculpt.ProgressMax
	fade := float32(1 - t)
	f.Batches = append(f.Batches, s.latticeBatches(fade, fade)...)
	if b := s.starLatticeBlend(1); b != nil {
		b.Opacity = fade
		f.Batches = append(f.Batches, b)
	}
	if b := s.tubeBatch(f.PathBlend, 1, s.tubeRadius()); b != nil {
		f.Batches = append(f.Batches, b)
	}
}

func renderCurvedMorph(s *Session, f *Frame, t float64) {
	f.PathBlend = f.Progress / sculpt.ProgressMax
	if b := s.tubeBatch(f.PathBlend, 1, s.tubeRadius()); b != nil {
		f.Batches = append(f.Batches, b)
	}
}
