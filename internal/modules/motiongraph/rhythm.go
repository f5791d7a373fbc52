package motiongraph

import (
	"fmt"
	"math"
	"strconv"
)

const (
	framesPerWord    = 18.0
	minSceneFrames   = 60
	maxSceneFrames   = 300
	closingStretch   = 1.1
	entryFraction    = 0.28
	exitFraction     = 0.14
	exitFractionCTA  = 0.18
	minEntryFrames   = 10
	minExitFrames    = 8
	jitterBuckets    = 1000
	jitterSpread     = 0.10
	jitterHalfSpread = jitterSpread / 2
)

type RhythmOptions struct {
	FPS  int
	Seed int64
	// TargetSecondsPerScene switches to uniform pacing; nil means content-driven.
	TargetSecondsPerScene *float64
	// MinHoldSeconds overrides DefaultMinHoldSeconds when set.
	MinHoldSeconds *float64
}

func (o RhythmOptions) fps() int {
	if o.FPS <= 0 {
		return DefaultFPS
	}
	return o.FPS
}

// MinHoldFrames is the legibility floor in frames.
func (o RhythmOptions) MinHoldFrames() int {
	secs := DefaultMinHoldSeconds
	if o.MinHoldSeconds != nil && *o.MinHoldSeconds >= 0 {
		secs = *o.MinHoldSeconds
	}
	return int(math.Round(secs * float64(o.fps())))
}

// Allocate splits each scene into entry, hold and exit frames. An empty scene
// list is an invariant violation.
func Allocate(scenes []EnrichedScene, opts RhythmOptions) ([]SceneRhythm, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: rhythm allocation over zero scenes", ErrInvariantViolation)
	}
	minHold := opts.MinHoldFrames()
	out := make([]SceneRhythm, len(scenes))
	for i, s := range scenes {
		total := clampFrames(BaseFrames(s, opts))
		if len(scenes) > 1 && i == len(scenes)-1 {
			total = clampFrames(total * closingStretch)
		}
		out[i] = splitRhythm(int(math.Round(total)), s.SceneRole == RoleCTA, Jitter(opts.Seed, i), minHold)
	}
	return out, nil
}

// BaseFrames is the unclamped frame budget for one scene.
func BaseFrames(s EnrichedScene, opts RhythmOptions) float64 {
	fps := float64(opts.fps())
	if opts.TargetSecondsPerScene != nil && *opts.TargetSecondsPerScene > 0 {
		return *opts.TargetSecondsPerScene * fps
	}
	intensity := 0.7 + 0.3*(1-s.EnergyScore)
	importance := 0.9 + 0.2*s.ImportanceScore
	return float64(s.WordCount) * framesPerWord * intensity * importance
}

func clampFrames(v float64) float64 {
	return math.Max(minSceneFrames, math.Min(maxSceneFrames, v))
}

func splitRhythm(total int, cta bool, jitter float64, minHold int) SceneRhythm {
	exitFrac := exitFraction
	if cta {
		exitFrac = exitFractionCTA
	}
	entry := maxInt(minEntryFrames, int(math.Round(float64(total)*entryFraction*(1+jitter))))
	exit := maxInt(minExitFrames, int(math.Round(float64(total)*exitFrac*(1+jitter))))
	hold := total - entry - exit
	if hold < minHold {
		hold = minHold
		total = entry + hold + exit
	}
	return SceneRhythm{EntryFrames: entry, HoldFrames: hold, ExitFrames: exit, TotalFrames: total}
}

// Jitter maps (seed, index) onto [-0.05, +0.05]. The key "seed:index" is
// hashed with h = h*31 + byte over uint32, then reduced mod 1000.
func Jitter(seed int64, index int) float64 {
	key := strconv.FormatInt(seed, 10) + ":" + strconv.Itoa(index)
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h*31 + uint32(key[i])
	}
	bucket := float64(h % jitterBuckets)
	return bucket/(jitterBuckets-1)*jitterSpread - jitterHalfSpread
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
