package motiongraph

const (
	longLayoutMinWords = 6
	longLayoutMinChars = 50
	accentImportance   = 0.8
)

// NextLayout classifies scene i and swaps to the next rotation entry when the
// result repeats prev.
func NextLayout(scene EnrichedScene, index int, prev LayoutType) LayoutType {
	choice := classifyLayout(scene, index)
	if choice == prev {
		choice = nextInRotation(layoutRotation, choice)
	}
	return choice
}

func classifyLayout(scene EnrichedScene, index int) LayoutType {
	switch {
	case scene.LayoutHint.Valid():
		return scene.LayoutHint
	case isSingleShortWord(scene.Words):
		return LayoutImpactSingleWord
	case scene.WordCount >= longLayoutMinWords || runeLen(scene.Text) >= longLayoutMinChars:
		return LayoutSplitStack
	case scene.SceneRole == RoleCTA || (scene.ImportanceScore > accentImportance && index%2 == 0):
		return LayoutGraphicAccent
	case index%2 == 0:
		return LayoutCenterHero
	default:
		return LayoutMinimalLeft
	}
}

func AssignLayouts(scenes []EnrichedScene) []LayoutType {
	out := make([]LayoutType, len(scenes))
	var prev LayoutType
	for i, s := range scenes {
		out[i] = NextLayout(s, i, prev)
		prev = out[i]
	}
	return out
}
