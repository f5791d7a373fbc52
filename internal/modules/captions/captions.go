package captions

import (
	"fmt"
	"math"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
)

const (
	DefaultAnimationPreset = "reveal"
	DefaultIntensity       = 0.5

	secondsPerWord     = 0.4
	minBlockFrames     = 45
	maxBlockFrames     = 240
	intensityBase      = 1.25
	intensityInfluence = 0.5
)

// Block is one caption beat in the legacy reveal format.
type Block struct {
	Text                 string   `json:"text" yaml:"text"`
	Words                []string `json:"words" yaml:"words"`
	DurationInFrames     int      `json:"durationInFrames" yaml:"durationInFrames"`
	AnimationPreset      string   `json:"animationPreset" yaml:"animationPreset"`
	HighlightWordIndices []int    `json:"highlightWordIndices,omitempty" yaml:"highlightWordIndices,omitempty"`
}

type Options struct {
	FPS             int
	Intensity       *float64
	AnimationPreset string
	HighlightWords  []string
}

// Process splits text into blocks and allocates their durations. Blank text
// yields no blocks.
func Process(text string, opts Options) []Block {
	return Allocate(Split(text), opts)
}

// Split tokenizes each sentence-like block of text.
func Split(text string) []Block {
	parts := motiongraph.SplitBlocks(text)
	out := make([]Block, 0, len(parts))
	for _, p := range parts {
		out = append(out, Block{Text: p, Words: motiongraph.Tokenize(p)})
	}
	return out
}

// Allocate assigns every block a frame count from its word count and the
// single global intensity.
func Allocate(blocks []Block, opts Options) []Block {
	fps := opts.FPS
	if fps <= 0 {
		fps = motiongraph.DefaultFPS
	}
	intensity := DefaultIntensity
	if opts.Intensity != nil {
		intensity = math.Max(0, math.Min(1, *opts.Intensity))
	}
	preset := opts.AnimationPreset
	if preset == "" {
		preset = DefaultAnimationPreset
	}

	out := make([]Block, len(blocks))
	for i, b := range blocks {
		b.DurationInFrames = DurationFrames(len(b.Words), fps, intensity)
		b.AnimationPreset = preset
		b.HighlightWordIndices = motiongraph.HighlightIndices(b.Words, opts.HighlightWords)
		out[i] = b
	}
	return out
}

func DurationFrames(wordCount, fps int, intensity float64) int {
	raw := float64(wordCount) * secondsPerWord * float64(fps) * (intensityBase - intensityInfluence*intensity)
	return int(math.Max(minBlockFrames, math.Min(maxBlockFrames, math.Round(raw))))
}

// TotalFrames sums block durations.
func TotalFrames(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		total += b.DurationInFrames
	}
	return total
}

// Validate reports blocks the renderer would reject.
func Validate(blocks []Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("%w: no caption blocks", motiongraph.ErrInvariantViolation)
	}
	for i, b := range blocks {
		if b.DurationInFrames < minBlockFrames || b.DurationInFrames > maxBlockFrames {
			return fmt.Errorf("%w: block %d duration %d", motiongraph.ErrInvariantViolation, i, b.DurationInFrames)
		}
	}
	return nil
}
