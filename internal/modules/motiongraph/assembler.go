package motiongraph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

const (
	labelMaxChars          = 25
	subHeadlineMaxChars    = 80
	supportingTextMaxChars = 120
	authorLineMaxChars     = 40
)

type Options struct {
	Format                string
	TemplateStyle         string
	FontFamily            string
	HighlightWords        []string
	TargetSecondsPerScene *float64
	MinHoldSeconds        *float64
	FPS                   int
	// Seed pins rhythm jitter and transitions. Nil derives it from the text.
	Seed *int64
	// Tone overrides the source's global tone.
	Tone string
}

type SourceKind string

const (
	SourceAI       SourceKind = "ai"
	SourceFallback SourceKind = "fallback"
)

// SceneBreakdown is what a scene source hands to the assembler.
type SceneBreakdown struct {
	Scenes     []RawScene
	GlobalTone string
	Kind       SourceKind
}

// SceneSource never fails: implementations recover into a deterministic
// fallback.
type SceneSource interface {
	Breakdown(ctx context.Context, text string) SceneBreakdown
}

type Result struct {
	Timeline *Timeline
	Source   SourceKind
	Elapsed  time.Duration
}

type Assembler struct {
	source SceneSource
	log    *logger.Logger
}

func NewAssembler(log *logger.Logger, source SceneSource) *Assembler {
	return &Assembler{source: source, log: log.With("service", "TimelineAssembler")}
}

// Assemble runs the scene source and then every deterministic stage.
func (a *Assembler) Assemble(ctx context.Context, text string, opts Options) (*Result, error) {
	tracer := otel.Tracer("kinetic/motiongraph")
	ctx, span := tracer.Start(ctx, "motiongraph.assemble")
	defer span.End()
	start := time.Now()

	if opts.Seed == nil {
		seed := DefaultSeed(text)
		opts.Seed = &seed
	}

	_, srcSpan := tracer.Start(ctx, "motiongraph.scene_source")
	bd := a.source.Breakdown(ctx, text)
	srcSpan.SetAttributes(
		attribute.String("scene_source.kind", string(bd.Kind)),
		attribute.Int("scene_source.scenes", len(bd.Scenes)),
	)
	srcSpan.End()

	tone := strings.TrimSpace(opts.Tone)
	if tone == "" {
		tone = bd.GlobalTone
	}

	tl, err := Build(bd.Scenes, tone, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		a.log.Error("Timeline build failed", "error", err, "scene_count", len(bd.Scenes))
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("timeline.scenes", len(tl.Scenes)),
		attribute.Int("timeline.total_frames", tl.TotalFrames),
	)

	elapsed := time.Since(start)
	a.log.Debug("Timeline assembled",
		"scene_count", len(tl.Scenes),
		"total_frames", tl.TotalFrames,
		"source", bd.Kind,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return &Result{Timeline: tl, Source: bd.Kind, Elapsed: elapsed}, nil
}

// Build runs the deterministic stages over an already validated scene list.
func Build(raws []RawScene, globalTone string, opts Options) (*Timeline, error) {
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: no scenes to assemble", ErrInvariantViolation)
	}
	if strings.TrimSpace(globalTone) == "" {
		globalTone = DefaultGlobalTone
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = DefaultSeed(joinTexts(raws))
	}

	enriched := EnrichAll(raws, globalTone)
	motions := BuildMotionConfigs(enriched)
	layouts := AssignLayouts(enriched)
	templates := AssignTemplates(enriched)

	rhythmOpts := RhythmOptions{
		FPS:                   fps,
		Seed:                  seed,
		TargetSecondsPerScene: opts.TargetSecondsPerScene,
		MinHoldSeconds:        opts.MinHoldSeconds,
	}
	rhythms, err := Allocate(enriched, rhythmOpts)
	if err != nil {
		return nil, err
	}
	transitions := AssignTransitions(len(enriched), seed, fps)

	styleName, style := ResolveStyle(opts.TemplateStyle)
	width, height := CanvasFor(opts.Format)

	tl := &Timeline{
		Width:         width,
		Height:        height,
		FPS:           fps,
		VideoStyle:    VideoStyleGraphicMotion,
		GlobalTone:    globalTone,
		TemplateStyle: styleName,
		Style:         style,
		Format:        strings.ToLower(strings.TrimSpace(opts.Format)),
		FontFamily:    strings.TrimSpace(opts.FontFamily),
		Seed:          seed,
		MinHoldFrames: rhythmOpts.MinHoldFrames(),
		Scenes:        make([]GraphicMotionScene, len(enriched)),
	}
	if opts.TargetSecondsPerScene != nil || opts.MinHoldSeconds != nil {
		tl.Pacing = &PacingHints{
			TargetSecondsPerScene: opts.TargetSecondsPerScene,
			MinHoldSeconds:        opts.MinHoldSeconds,
		}
	}

	cursor := 0
	for i, s := range enriched {
		tl.Scenes[i] = GraphicMotionScene{
			Index:                i,
			Text:                 s.Text,
			Words:                s.Words,
			SceneRole:            s.SceneRole,
			ToneCategory:         s.ToneCategory,
			EnergyScore:          s.EnergyScore,
			VisualWeight:         s.VisualWeight,
			Layout:               layouts[i],
			Template:             templates[i],
			Motion:               motions[i],
			Rhythm:               rhythms[i],
			TransitionIn:         transitions[i],
			StartFrame:           cursor,
			HighlightWordIndices: HighlightIndices(s.Words, opts.HighlightWords),
			Label:                Truncate(s.Label, labelMaxChars),
			SubHeadline:          Truncate(s.SubHeadline, subHeadlineMaxChars),
			SupportingText:       Truncate(s.SupportingText, supportingTextMaxChars),
			AuthorLine:           Truncate(s.AuthorLine, authorLineMaxChars),
			HeadlineEmphasis:     s.HeadlineEmphasis,
			AccentColor:          style.AccentColor,
		}
		cursor += rhythms[i].TotalFrames
	}
	tl.TotalFrames = cursor

	if err := tl.Validate(); err != nil {
		return nil, err
	}
	return tl, nil
}

func joinTexts(raws []RawScene) string {
	parts := make([]string, len(raws))
	for i, r := range raws {
		parts[i] = r.Text
	}
	return strings.Join(parts, "\n")
}
