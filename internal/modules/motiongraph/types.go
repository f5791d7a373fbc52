package motiongraph

import "errors"

// ErrInvariantViolation marks a defect in a deterministic stage. It is never
// a recoverable runtime condition.
var ErrInvariantViolation = errors.New("motiongraph: invariant violation")

const (
	VideoStyleGraphicMotion = "graphic-motion"
	DefaultFPS              = 30
	DefaultMinHoldSeconds   = 0.8
	DefaultGlobalTone       = "neutral"
)

type SceneRole string

const (
	RoleIntro   SceneRole = "intro"
	RoleProblem SceneRole = "problem"
	RoleFeature SceneRole = "feature"
	RoleCTA     SceneRole = "cta"
)

func (r SceneRole) Valid() bool {
	switch r {
	case RoleIntro, RoleProblem, RoleFeature, RoleCTA:
		return true
	}
	return false
}

type Tone string

const (
	ToneCalm        Tone = "calm"
	ToneUrgent      Tone = "urgent"
	ToneNeutral     Tone = "neutral"
	ToneCelebratory Tone = "celebratory"
)

type HeadlineEmphasis string

const (
	HeadlineHigh   HeadlineEmphasis = "high"
	HeadlineMedium HeadlineEmphasis = "medium"
)

type LayoutType string

const (
	LayoutCenterHero       LayoutType = "center-hero"
	LayoutSplitStack       LayoutType = "split-stack"
	LayoutMinimalLeft      LayoutType = "minimal-left"
	LayoutImpactSingleWord LayoutType = "impact-single-word"
	LayoutGraphicAccent    LayoutType = "graphic-accent"
)

// layoutRotation is the substitution order used on adjacent collisions.
var layoutRotation = []LayoutType{
	LayoutCenterHero,
	LayoutSplitStack,
	LayoutMinimalLeft,
	LayoutImpactSingleWord,
	LayoutGraphicAccent,
}

func (l LayoutType) Valid() bool { return indexOf(layoutRotation, l) >= 0 }

type TemplateType string

const (
	TemplateTitleCard        TemplateType = "title-card"
	TemplateQuoteCard        TemplateType = "quote-card"
	TemplateFeatureHighlight TemplateType = "feature-highlight"
	TemplateImpactFullBleed  TemplateType = "impact-full-bleed"
)

var templateRotation = []TemplateType{
	TemplateTitleCard,
	TemplateQuoteCard,
	TemplateFeatureHighlight,
	TemplateImpactFullBleed,
}

func (t TemplateType) Valid() bool { return indexOf(templateRotation, t) >= 0 }

type MotionPreset string

const (
	MotionPremiumEase MotionPreset = "premium-ease"
	MotionMinimal     MotionPreset = "minimal"
	MotionEmphasis    MotionPreset = "emphasis"
)

var motionRotation = []MotionPreset{MotionPremiumEase, MotionMinimal, MotionEmphasis}

func (m MotionPreset) Valid() bool { return indexOf(motionRotation, m) >= 0 }

type EntryStyle string

const (
	EntryStaggerUp  EntryStyle = "stagger-up"
	EntryFade       EntryStyle = "fade"
	EntryMaskReveal EntryStyle = "mask-reveal"
)

type TransitionType string

const (
	TransitionFade     TransitionType = "fade"
	TransitionSlideUp  TransitionType = "slide-up"
	TransitionMaskWipe TransitionType = "mask-wipe"
	// TransitionZoom is accepted by the renderer but never assigned.
	TransitionZoom TransitionType = "zoom"
)

var transitionRotation = []TransitionType{TransitionFade, TransitionSlideUp, TransitionMaskWipe}

// RawScene is one beat as proposed by a scene source. Optional hints are
// empty strings when absent.
type RawScene struct {
	Text              string           `json:"text" yaml:"text"`
	SceneRole         SceneRole        `json:"sceneRole" yaml:"sceneRole"`
	EmphasisLevel     float64          `json:"emphasisLevel" yaml:"emphasisLevel"`
	ImportanceScore   float64          `json:"importanceScore" yaml:"importanceScore"`
	SuggestedLayout   LayoutType       `json:"suggestedLayout,omitempty" yaml:"suggestedLayout,omitempty"`
	SuggestedTemplate TemplateType     `json:"suggestedTemplate,omitempty" yaml:"suggestedTemplate,omitempty"`
	Label             string           `json:"label,omitempty" yaml:"label,omitempty"`
	SubHeadline       string           `json:"subHeadline,omitempty" yaml:"subHeadline,omitempty"`
	SupportingText    string           `json:"supportingText,omitempty" yaml:"supportingText,omitempty"`
	AuthorLine        string           `json:"authorLine,omitempty" yaml:"authorLine,omitempty"`
	HeadlineEmphasis  HeadlineEmphasis `json:"headlineEmphasis,omitempty" yaml:"headlineEmphasis,omitempty"`
}

type EnrichedScene struct {
	RawScene
	Words        []string
	WordCount    int
	EnergyScore  float64
	ToneCategory Tone
	VisualWeight float64
	// LayoutHint is the source suggestion when present, otherwise the
	// text-shape hint. Empty means no preference.
	LayoutHint LayoutType
}

type MotionConfig struct {
	MotionPreset    MotionPreset `json:"motionPreset" yaml:"motionPreset"`
	EntryStyle      EntryStyle   `json:"entryStyle" yaml:"entryStyle"`
	MotionIntensity float64      `json:"motionIntensity" yaml:"motionIntensity"`
	DepthLevel      int          `json:"depthLevel" yaml:"depthLevel"`
}

type SceneRhythm struct {
	EntryFrames int `json:"entryFrames" yaml:"entryFrames"`
	HoldFrames  int `json:"holdFrames" yaml:"holdFrames"`
	ExitFrames  int `json:"exitFrames" yaml:"exitFrames"`
	TotalFrames int `json:"totalFrames" yaml:"totalFrames"`
}

type TransitionSpec struct {
	TransitionType     TransitionType `json:"transitionType" yaml:"transitionType"`
	TransitionDuration int            `json:"transitionDuration" yaml:"transitionDuration"`
}

type TextColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Muted     string `json:"muted" yaml:"muted"`
}

type StyleConfig struct {
	Background              string     `json:"background" yaml:"background"`
	TypographyScale         float64    `json:"typographyScale" yaml:"typographyScale"`
	MotionIntensityBaseline float64    `json:"motionIntensityBaseline" yaml:"motionIntensityBaseline"`
	AccentColor             string     `json:"accentColor" yaml:"accentColor"`
	TextColors              TextColors `json:"textColors" yaml:"textColors"`
}

type GraphicMotionScene struct {
	Index                int              `json:"index" yaml:"index"`
	Text                 string           `json:"text" yaml:"text"`
	Words                []string         `json:"words" yaml:"words"`
	SceneRole            SceneRole        `json:"sceneRole" yaml:"sceneRole"`
	ToneCategory         Tone             `json:"toneCategory" yaml:"toneCategory"`
	EnergyScore          float64          `json:"energyScore" yaml:"energyScore"`
	VisualWeight         float64          `json:"visualWeight" yaml:"visualWeight"`
	Layout               LayoutType       `json:"layout" yaml:"layout"`
	Template             TemplateType     `json:"template" yaml:"template"`
	Motion               MotionConfig     `json:"motion" yaml:"motion"`
	Rhythm               SceneRhythm      `json:"rhythm" yaml:"rhythm"`
	TransitionIn         TransitionSpec   `json:"transitionIn" yaml:"transitionIn"`
	StartFrame           int              `json:"startFrame" yaml:"startFrame"`
	HighlightWordIndices []int            `json:"highlightWordIndices,omitempty" yaml:"highlightWordIndices,omitempty"`
	Label                string           `json:"label,omitempty" yaml:"label,omitempty"`
	SubHeadline          string           `json:"subHeadline,omitempty" yaml:"subHeadline,omitempty"`
	SupportingText       string           `json:"supportingText,omitempty" yaml:"supportingText,omitempty"`
	AuthorLine           string           `json:"authorLine,omitempty" yaml:"authorLine,omitempty"`
	HeadlineEmphasis     HeadlineEmphasis `json:"headlineEmphasis,omitempty" yaml:"headlineEmphasis,omitempty"`
	AccentColor          string           `json:"accentColor" yaml:"accentColor"`
}

type PacingHints struct {
	TargetSecondsPerScene *float64 `json:"targetSecondsPerScene,omitempty" yaml:"targetSecondsPerScene,omitempty"`
	MinHoldSeconds        *float64 `json:"minHoldSeconds,omitempty" yaml:"minHoldSeconds,omitempty"`
}

// Timeline is the renderer contract. It is built once and not mutated after
// hand-off.
type Timeline struct {
	Width         int                  `json:"width" yaml:"width"`
	Height        int                  `json:"height" yaml:"height"`
	FPS           int                  `json:"fps" yaml:"fps"`
	VideoStyle    string               `json:"videoStyle" yaml:"videoStyle"`
	GlobalTone    string               `json:"globalTone" yaml:"globalTone"`
	TemplateStyle string               `json:"templateStyle" yaml:"templateStyle"`
	Style         StyleConfig          `json:"style" yaml:"style"`
	Format        string               `json:"format,omitempty" yaml:"format,omitempty"`
	FontFamily    string               `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	Pacing        *PacingHints         `json:"pacing,omitempty" yaml:"pacing,omitempty"`
	Seed          int64                `json:"seed" yaml:"seed"`
	MinHoldFrames int                  `json:"minHoldFrames" yaml:"minHoldFrames"`
	TotalFrames   int                  `json:"totalFrames" yaml:"totalFrames"`
	Scenes        []GraphicMotionScene `json:"scenes" yaml:"scenes"`
}

func indexOf[T comparable](xs []T, v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// nextInRotation returns the entry after v, wrapping. Unknown values map to
// the first entry.
func nextInRotation[T comparable](xs []T, v T) T {
	i := indexOf(xs, v)
	return xs[(i+1)%len(xs)]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
