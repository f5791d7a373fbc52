package scenesource

import (
	"fmt"
	"strings"
)

const schemaName = "graphic_motion_scenes"

func systemPrompt(maxScenes int) string {
	return strings.TrimSpace(fmt.Sprintf(`
Break a short-form video script into on-screen kinetic typography scenes.

Rules:
- Return between 1 and %d scenes, in narrative order.
- Each scene's text is what appears on screen; keep it under 12 words.
- sceneRole: "intro" for the hook, "problem" for pain points, "feature" for benefits, "cta" for the closing ask.
- emphasisLevel (0..1) is urgency; importanceScore (0..1) is narrative weight. They are independent.
- suggestedLayout is one of center-hero, split-stack, minimal-left, impact-single-word, graphic-accent, or null.
- suggestedTemplate is one of title-card, quote-card, feature-highlight, impact-full-bleed, or null.
- label (<= 25 chars), subHeadline (<= 80), supportingText (<= 120), authorLine (<= 40) are optional; use null when not needed.
- headlineEmphasis is "high", "medium", or null.
- globalTone is one or two words describing the whole script (e.g. "calm", "urgent", "bold celebratory").
`, maxScenes))
}

func userPrompt(text string) string {
	return "SCRIPT:\n" + strings.TrimSpace(text)
}

func nullable(t string) map[string]any {
	return map[string]any{"type": []any{t, "null"}}
}

func nullableEnum(values ...string) map[string]any {
	enum := make([]any, 0, len(values)+1)
	for _, v := range values {
		enum = append(enum, v)
	}
	enum = append(enum, nil)
	return map[string]any{"type": []any{"string", "null"}, "enum": enum}
}

func breakdownSchema() map[string]any {
	scene := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":              map[string]any{"type": "string"},
			"sceneRole":         map[string]any{"type": "string", "enum": []any{"intro", "problem", "feature", "cta"}},
			"emphasisLevel":     map[string]any{"type": "number"},
			"importanceScore":   map[string]any{"type": "number"},
			"suggestedLayout":   nullableEnum("center-hero", "split-stack", "minimal-left", "impact-single-word", "graphic-accent"),
			"suggestedTemplate": nullableEnum("title-card", "quote-card", "feature-highlight", "impact-full-bleed"),
			"label":             nullable("string"),
			"subHeadline":       nullable("string"),
			"supportingText":    nullable("string"),
			"authorLine":        nullable("string"),
			"headlineEmphasis":  nullableEnum("high", "medium"),
		},
		"required": []any{
			"text", "sceneRole", "emphasisLevel", "importanceScore", "suggestedLayout", "suggestedTemplate",
			"label", "subHeadline", "supportingText", "authorLine", "headlineEmphasis",
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"globalTone": map[string]any{"type": "string"},
			"scenes":     map[string]any{"type": "array", "items": scene},
		},
		"required": []any{"globalTone", "scenes"},
	}
}
