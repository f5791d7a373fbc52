package captions

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
)

func TestDurationFrames(t *testing.T) {
	cases := []struct {
		words     int
		intensity float64
		want      int
	}{
		{0, 0.5, 45},
		{5, 0.5, 60},
		{5, 0, 75},
		{5, 1, 45},
		{30, 0.5, 240},
	}
	for _, tc := range cases {
		if got := DurationFrames(tc.words, 30, tc.intensity); got != tc.want {
			t.Fatalf("words=%d intensity=%v: want=%d got=%d", tc.words, tc.intensity, tc.want, got)
		}
	}
}

func TestProcess_DefaultsAndHighlights(t *testing.T) {
	blocks := Process("The secret is out. Tell everyone!", Options{HighlightWords: []string{"secret", "everyone"}})
	if len(blocks) != 2 {
		t.Fatalf("blocks: want=2 got=%d", len(blocks))
	}
	if blocks[0].AnimationPreset != DefaultAnimationPreset {
		t.Fatalf("preset: want=reveal got=%s", blocks[0].AnimationPreset)
	}
	if !reflect.DeepEqual(blocks[0].Words, []string{"The", "secret", "is", "out."}) {
		t.Fatalf("words: %v", blocks[0].Words)
	}
	if !reflect.DeepEqual(blocks[0].HighlightWordIndices, []int{1}) || blocks[1].HighlightWordIndices != nil {
		t.Fatalf("highlights: %v / %v", blocks[0].HighlightWordIndices, blocks[1].HighlightWordIndices)
	}
	if blocks[0].DurationInFrames != 48 {
		t.Fatalf("duration: want=48 got=%d", blocks[0].DurationInFrames)
	}
	if TotalFrames(blocks) != blocks[0].DurationInFrames+blocks[1].DurationInFrames {
		t.Fatalf("total mismatch")
	}
	if err := Validate(blocks); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestProcess_BlankTextHasNoBlocks(t *testing.T) {
	blocks := Process("  \n ", Options{})
	if len(blocks) != 0 {
		t.Fatalf("want no blocks got=%d", len(blocks))
	}
	if err := Validate(blocks); !errors.Is(err, motiongraph.ErrInvariantViolation) {
		t.Fatalf("want invariant violation got=%v", err)
	}
}
