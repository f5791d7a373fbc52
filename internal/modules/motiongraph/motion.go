package motiongraph

const (
	emphasisScoreMin = 1.4
	minimalScoreMax  = 0.8
)

// NextMotion resolves scene i given the preset chosen for scene i-1 (empty for
// the first scene).
func NextMotion(scene EnrichedScene, index int, prev MotionPreset) MotionConfig {
	score := scene.ImportanceScore + scene.EnergyScore + 0.01*float64(index)

	preset := MotionPremiumEase
	switch {
	case score >= emphasisScoreMin:
		preset = MotionEmphasis
	case score <= minimalScoreMax:
		preset = MotionMinimal
	}
	if preset == prev {
		preset = nextInRotation(motionRotation, preset)
	}

	entry := EntryStaggerUp
	if scene.SceneRole == RoleCTA {
		entry = EntryFade
	}

	return MotionConfig{
		MotionPreset:    preset,
		EntryStyle:      entry,
		MotionIntensity: clamp01(0.6*scene.EnergyScore + 0.4*scene.EmphasisLevel),
		DepthLevel:      0,
	}
}

func BuildMotionConfigs(scenes []EnrichedScene) []MotionConfig {
	out := make([]MotionConfig, len(scenes))
	var prev MotionPreset
	for i, s := range scenes {
		out[i] = NextMotion(s, i, prev)
		prev = out[i].MotionPreset
	}
	return out
}
