package motiongraph

const (
	shortCTAMaxWords = 4
	quoteMinWords    = 8
	quoteMinChars    = 60
)

func NextTemplate(scene EnrichedScene, index int, prev TemplateType) TemplateType {
	choice := classifyTemplate(scene, index)
	if choice == prev {
		choice = nextInRotation(templateRotation, choice)
	}
	return choice
}

func classifyTemplate(scene EnrichedScene, index int) TemplateType {
	switch {
	case scene.SuggestedTemplate.Valid():
		return scene.SuggestedTemplate
	case isSingleShortWord(scene.Words) || (scene.SceneRole == RoleCTA && scene.WordCount <= shortCTAMaxWords):
		return TemplateImpactFullBleed
	case scene.WordCount >= quoteMinWords || runeLen(scene.Text) >= quoteMinChars:
		return TemplateQuoteCard
	case scene.SceneRole == RoleFeature || scene.SceneRole == RoleProblem:
		return TemplateFeatureHighlight
	case index == 0:
		return TemplateTitleCard
	default:
		return TemplateFeatureHighlight
	}
}

func AssignTemplates(scenes []EnrichedScene) []TemplateType {
	out := make([]TemplateType, len(scenes))
	var prev TemplateType
	for i, s := range scenes {
		out[i] = NextTemplate(s, i, prev)
		prev = out[i]
	}
	return out
}
