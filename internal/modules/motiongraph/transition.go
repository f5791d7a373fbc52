package motiongraph

import "math"

const transitionBaseFrames = 10.0

// NextTransition resolves the incoming transition of scene i.
func NextTransition(index int, seed int64, fps int, prev TransitionType) TransitionSpec {
	if index == 0 {
		return TransitionSpec{TransitionType: TransitionFade, TransitionDuration: 0}
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	n := uint64(len(transitionRotation))
	choice := transitionRotation[(uint64(index)%n+absSeed(seed)%n)%n]
	if choice == prev {
		choice = nextInRotation(transitionRotation, choice)
	}
	return TransitionSpec{
		TransitionType:     choice,
		TransitionDuration: int(math.Round(transitionBaseFrames * float64(fps) / DefaultFPS)),
	}
}

func AssignTransitions(count int, seed int64, fps int) []TransitionSpec {
	if count <= 0 {
		return nil
	}
	out := make([]TransitionSpec, count)
	var prev TransitionType
	for i := range out {
		out[i] = NextTransition(i, seed, fps, prev)
		prev = out[i].TransitionType
	}
	return out
}

func absSeed(seed int64) uint64 {
	if seed >= 0 {
		return uint64(seed)
	}
	return uint64(-(seed + 1)) + 1
}
