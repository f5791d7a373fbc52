package motiongraph

import "fmt"

// Validate checks every structural invariant of the timeline. A failure is a
// defect in one of the deterministic stages and wraps ErrInvariantViolation.
func (t *Timeline) Validate() error {
	if t == nil || len(t.Scenes) == 0 {
		return violation("timeline has no scenes")
	}
	if t.Width <= 0 || t.Height <= 0 || t.FPS <= 0 {
		return violation("invalid canvas %dx%d@%d", t.Width, t.Height, t.FPS)
	}

	total := 0
	for i, s := range t.Scenes {
		r := s.Rhythm
		if r.EntryFrames < 0 || r.HoldFrames < 0 || r.ExitFrames < 0 {
			return violation("scene %d: negative rhythm %+v", i, r)
		}
		if r.TotalFrames != r.EntryFrames+r.HoldFrames+r.ExitFrames {
			return violation("scene %d: total %d != %d+%d+%d", i, r.TotalFrames, r.EntryFrames, r.HoldFrames, r.ExitFrames)
		}
		if r.TotalFrames < minSceneFrames {
			return violation("scene %d: total %d below %d", i, r.TotalFrames, minSceneFrames)
		}
		if r.TotalFrames > maxSceneFrames && r.HoldFrames != t.MinHoldFrames {
			return violation("scene %d: total %d above %d without hold floor", i, r.TotalFrames, maxSceneFrames)
		}
		if r.HoldFrames < t.MinHoldFrames {
			return violation("scene %d: hold %d below floor %d", i, r.HoldFrames, t.MinHoldFrames)
		}
		if s.StartFrame != total {
			return violation("scene %d: start %d != %d", i, s.StartFrame, total)
		}
		total += r.TotalFrames

		if !s.Layout.Valid() || !s.Template.Valid() || !s.Motion.MotionPreset.Valid() {
			return violation("scene %d: unknown layout/template/preset", i)
		}
		if i == 0 {
			if s.TransitionIn.TransitionType != TransitionFade || s.TransitionIn.TransitionDuration != 0 {
				return violation("scene 0: transition %+v", s.TransitionIn)
			}
		} else {
			prev := t.Scenes[i-1]
			if s.Layout == prev.Layout {
				return violation("scenes %d,%d share layout %s", i-1, i, s.Layout)
			}
			if s.Template == prev.Template {
				return violation("scenes %d,%d share template %s", i-1, i, s.Template)
			}
			if s.Motion.MotionPreset == prev.Motion.MotionPreset {
				return violation("scenes %d,%d share motion preset %s", i-1, i, s.Motion.MotionPreset)
			}
			if s.TransitionIn.TransitionType == prev.TransitionIn.TransitionType {
				return violation("scenes %d,%d share transition %s", i-1, i, s.TransitionIn.TransitionType)
			}
		}
		for _, idx := range s.HighlightWordIndices {
			if idx < 0 || idx >= len(s.Words) {
				return violation("scene %d: highlight index %d out of range", i, idx)
			}
		}
		if runeLen(s.Label) > labelMaxChars || runeLen(s.SubHeadline) > subHeadlineMaxChars ||
			runeLen(s.SupportingText) > supportingTextMaxChars || runeLen(s.AuthorLine) > authorLineMaxChars {
			return violation("scene %d: free text exceeds renderer limits", i)
		}
	}
	if total != t.TotalFrames {
		return violation("timeline total %d != sum %d", t.TotalFrames, total)
	}
	return nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...)
}
