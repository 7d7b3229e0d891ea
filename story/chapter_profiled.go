package story

import (
	sculpt "github.com/ABakker30/sculpture-story-sub001"
	"github.com/ABakker30/sculpture-story-sub001/loft"
)

// The Profiled chapter sweeps the lofted sculpture mesh along the
// curve. The sweep's leading edge tapers with a smoothstep; once the
// sweep completes, the placeholder color gives way to the final
// material.
var profiledPhases = []phase{
	{0, 70, renderProfiledSweep},
	{70, 100, renderProfiledFinish},
}

func (s *Session) meshParams(progress float64) *MeshParams {
	if len(s.sections) < 2 {
		return nil
	}
	return &MeshParams{
		Options: loft.Options{
			LoftProgress: progress / sculpt.ProgressMax,
			Resample:     loft.DefaultResample,
		},
	}
}

func renderProfiledSweep(s *Session, f *Frame, t float64) {
	f.PathBlend = 1
	m := s.meshParams(f.Progress)
	if m == nil {
		// No profile data: keep the bare tube visible instead.
		if b := s.tubeBatch(1, t, s.tubeRadius()); b != nil {
			f.Batches = append(f.Batches, b)
		}
		return
	}
	m.Sweep = sculpt.Smoothstep(t, 0, 1)
	f.Mesh = m
}

func renderProfiledFinish(s *Session, f *Frame, t float64) {
	f.PathBlend = 1
	m := s.meshParams(f.Progress)
	if m == nil {
		if b := s.tubeBatch(1, 1, s.tubeRadius()); b != nil {
			f.Batches = append(f.Batches, b)
		}
		return
	}
	m.Sweep = 1
	m.ColorBlend = t
	f.Mesh = m
}
