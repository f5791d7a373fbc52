package scenesource

import "github.com/yungbote/kinetic-backend/internal/modules/motiongraph"

const (
	fallbackEmphasis       = 0.5
	fallbackImportanceLow  = 0.3
	fallbackImportanceSpan = 0.4
)

// Fallback splits text into sentence-like blocks. The first block is the
// intro, the last the cta, everything between a feature. It never returns an
// empty list: blank input yields a single whitespace scene.
func Fallback(text string) []motiongraph.RawScene {
	blocks := motiongraph.SplitBlocks(text)
	if len(blocks) == 0 {
		blocks = []string{" "}
	}
	n := len(blocks)
	out := make([]motiongraph.RawScene, n)
	for i, b := range blocks {
		importance := fallbackImportanceLow
		if n > 1 {
			importance += fallbackImportanceSpan * float64(i) / float64(n-1)
		}
		out[i] = motiongraph.RawScene{
			Text:            b,
			SceneRole:       roleForPosition(i, n),
			EmphasisLevel:   fallbackEmphasis,
			ImportanceScore: importance,
		}
	}
	return out
}

func roleForPosition(i, n int) motiongraph.SceneRole {
	switch {
	case i == 0:
		return motiongraph.RoleIntro
	case i == n-1:
		return motiongraph.RoleCTA
	default:
		return motiongraph.RoleFeature
	}
}
