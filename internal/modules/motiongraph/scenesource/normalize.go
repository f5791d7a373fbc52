package scenesource

import (
	"errors"
	"math"
	"strings"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
)

var errNoScenes = errors.New("scene source returned no usable scenes")

// rawHint is a scene as it arrives from an untyped producer. Every optional
// field is a pointer so "absent" and "zero" stay distinct.
type rawHint struct {
	Text              string   `json:"text"`
	SceneRole         *string  `json:"sceneRole"`
	EmphasisLevel     *float64 `json:"emphasisLevel"`
	ImportanceScore   *float64 `json:"importanceScore"`
	SuggestedLayout   *string  `json:"suggestedLayout"`
	SuggestedTemplate *string  `json:"suggestedTemplate"`
	Label             *string  `json:"label"`
	SubHeadline       *string  `json:"subHeadline"`
	SupportingText    *string  `json:"supportingText"`
	AuthorLine        *string  `json:"authorLine"`
	HeadlineEmphasis  *string  `json:"headlineEmphasis"`
}

// normalize turns loose hints into validated RawScenes: blank scenes are
// dropped, scores are clamped, unknown enum values are cleared, and the list
// is capped at maxScenes.
func normalize(hints []rawHint, maxScenes int) ([]motiongraph.RawScene, error) {
	kept := make([]rawHint, 0, len(hints))
	for _, h := range hints {
		if strings.TrimSpace(h.Text) != "" {
			kept = append(kept, h)
		}
	}
	if maxScenes > 0 && len(kept) > maxScenes {
		kept = kept[:maxScenes]
	}
	if len(kept) == 0 {
		return nil, errNoScenes
	}

	n := len(kept)
	out := make([]motiongraph.RawScene, n)
	for i, h := range kept {
		role := motiongraph.SceneRole(lower(h.SceneRole))
		if !role.Valid() {
			role = roleForPosition(i, n)
		}
		layout := motiongraph.LayoutType(lower(h.SuggestedLayout))
		if !layout.Valid() {
			layout = ""
		}
		template := motiongraph.TemplateType(lower(h.SuggestedTemplate))
		if !template.Valid() {
			template = ""
		}
		emphasis := motiongraph.HeadlineEmphasis(lower(h.HeadlineEmphasis))
		if emphasis != motiongraph.HeadlineHigh && emphasis != motiongraph.HeadlineMedium {
			emphasis = ""
		}

		out[i] = motiongraph.RawScene{
			Text:              strings.TrimSpace(h.Text),
			SceneRole:         role,
			EmphasisLevel:     unit(h.EmphasisLevel, fallbackEmphasis),
			ImportanceScore:   unit(h.ImportanceScore, fallbackImportanceLow+fallbackImportanceSpan/2),
			SuggestedLayout:   layout,
			SuggestedTemplate: template,
			Label:             trimmed(h.Label),
			SubHeadline:       trimmed(h.SubHeadline),
			SupportingText:    trimmed(h.SupportingText),
			AuthorLine:        trimmed(h.AuthorLine),
			HeadlineEmphasis:  emphasis,
		}
	}
	return out, nil
}

func unit(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return math.Max(0, math.Min(1, *v))
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func lower(s *string) string {
	return strings.ToLower(trimmed(s))
}
