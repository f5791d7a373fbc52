package motiongraph

import "strings"

const (
	singleWordMaxChars   = 8
	splitStackMinWords   = 8
	splitStackMinChars   = 50
	wordDensityHalfPoint = 5.0
)

// Enrich derives the scoring signals for one scene. It is total: empty text
// yields zero words and a finite energy.
func Enrich(raw RawScene, globalTone string) EnrichedScene {
	words := Tokenize(raw.Text)
	wc := len(words)

	density := 1 - 1/(1+float64(wc)/wordDensityHalfPoint)
	energy := clamp01(0.4*raw.EmphasisLevel + 0.3*density + 0.3*raw.ImportanceScore)

	hint := raw.SuggestedLayout
	if !hint.Valid() {
		hint = layoutHintFor(raw.Text, words)
	}

	return EnrichedScene{
		RawScene:     raw,
		Words:        words,
		WordCount:    wc,
		EnergyScore:  energy,
		ToneCategory: toneFor(raw.SceneRole, globalTone),
		VisualWeight: clamp01(0.6*raw.ImportanceScore + 0.4*raw.EmphasisLevel),
		LayoutHint:   hint,
	}
}

func EnrichAll(raws []RawScene, globalTone string) []EnrichedScene {
	out := make([]EnrichedScene, len(raws))
	for i, r := range raws {
		out[i] = Enrich(r, globalTone)
	}
	return out
}

func toneFor(role SceneRole, globalTone string) Tone {
	g := strings.ToLower(globalTone)
	switch role {
	case RoleCTA:
		return ToneUrgent
	case RoleIntro:
		return ToneCalm
	case RoleProblem:
		if strings.Contains(g, "urgent") {
			return ToneUrgent
		}
		return ToneNeutral
	default:
		if strings.Contains(g, "celebrat") || strings.Contains(g, "bold") {
			return ToneCelebratory
		}
		return ToneNeutral
	}
}

func layoutHintFor(text string, words []string) LayoutType {
	if isSingleShortWord(words) {
		return LayoutImpactSingleWord
	}
	if len(words) >= splitStackMinWords || runeLen(text) >= splitStackMinChars {
		return LayoutSplitStack
	}
	return ""
}

func isSingleShortWord(words []string) bool {
	return len(words) == 1 && runeLen(words[0]) <= singleWordMaxChars
}
