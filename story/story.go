package story

import sculpt "github.com/ABakker30/sculpture-story-sub001"

// The composed story slider maps linearly onto five equal windows, one
// per chapter. Chapters are strictly sequential: while one animates,
// every earlier chapter is pinned at full progress and every later one
// at zero.

// storyWindow is the story-slider width of one chapter.
const storyWindow = sculpt.ProgressMax / NumChapters

// ChapterProgress decomposes a story value in [0,100] into the five
// per-chapter progress values.
func ChapterProgress(v float64) [NumChapters]float64 {
	v = sculpt.Clamp(v, 0, sculpt.ProgressMax)
	active := int(v / storyWindow)
	if active >= NumChapters {
		active = NumChapters - 1
	}
	var out [NumChapters]float64
	for c := 0; c < NumChapters; c++ {
		switch {
		case c < active:
			out[c] = sculpt.ProgressMax
		case c == active:
			out[c] = (v - float64(c)*storyWindow) * (sculpt.ProgressMax / storyWindow)
		default:
			out[c] = 0
		}
	}
	return out
}

// ChapterProgress exposes the decomposition on the session for
// UI bindings.
func (s *Session) ChapterProgress(v float64) [NumChapters]float64 {
	return ChapterProgress(v)
}

// EvaluateStory renders the chapter active at story value v, at that
// chapter's local progress.
func (s *Session) EvaluateStory(v float64) *Frame {
	progress := ChapterProgress(v)
	active := int(sculpt.Clamp(v, 0, sculpt.ProgressMax) / storyWindow)
	if active >= NumChapters {
		active = NumChapters - 1
	}
	return s.Evaluate(Chapter(active), progress[active])
}
