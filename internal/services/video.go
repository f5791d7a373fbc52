package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/yungbote/kinetic-backend/internal/data/repos"
	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/modules/captions"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph/storyboard"
	"github.com/yungbote/kinetic-backend/internal/observability"
	"github.com/yungbote/kinetic-backend/internal/platform/apierr"
	"github.com/yungbote/kinetic-backend/internal/platform/ctxutil"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

// RenderEnvelope is the payload the render workers consume.
type RenderEnvelope struct {
	ProjectID string                `json:"projectId"`
	UserID    string                `json:"userId"`
	Mode      string                `json:"mode"`
	Watermark bool                  `json:"watermark"`
	Music     *Music                `json:"music,omitempty"`
	Timeline  *motiongraph.Timeline `json:"timeline,omitempty"`
	Captions  []captions.Block      `json:"captions,omitempty"`
	FPS       int                   `json:"fps,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
}

type RenderResult struct {
	RunID    string          `json:"runId,omitempty"`
	Source   string          `json:"source,omitempty"`
	Dispatch DispatchReceipt `json:"dispatch"`
	Envelope *RenderEnvelope `json:"envelope"`
}

// TimelineAssembler runs the scene source and deterministic stages.
type TimelineAssembler interface {
	Assemble(ctx context.Context, text string, opts motiongraph.Options) (*motiongraph.Result, error)
}

type StoryboardRenderer interface {
	Render(ctx context.Context, tl *motiongraph.Timeline, opts storyboard.Options) ([]byte, error)
}

type VideoService interface {
	GraphicMotion(ctx context.Context, req GraphicMotionRequest) (*RenderResult, error)
	Preview(ctx context.Context, req GraphicMotionRequest) (*motiongraph.Result, error)
	Storyboard(ctx context.Context, req GraphicMotionRequest) ([]byte, error)
	Captions(ctx context.Context, req CaptionsRequest) (*RenderResult, error)
	ListRuns(ctx context.Context, projectID string, limit int) ([]*types.GenerationRun, error)
}

type VideoServiceDeps struct {
	Assembler    TimelineAssembler
	Storyboard   StoryboardRenderer
	Music        MusicResolver
	Entitlements EntitlementService
	Dispatcher   RenderDispatcher
	Runs         repos.GenerationRunRepo
	Metrics      *observability.Metrics
	DefaultFPS   int
}

type videoService struct {
	log      *logger.Logger
	deps     VideoServiceDeps
	validate *validator.Validate
}

func NewVideoService(log *logger.Logger, deps VideoServiceDeps) (VideoService, error) {
	if deps.Assembler == nil {
		return nil, fmt.Errorf("timeline assembler required")
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = noopDispatcher{}
	}
	if deps.DefaultFPS <= 0 {
		deps.DefaultFPS = motiongraph.DefaultFPS
	}
	return &videoService{
		log:      log.With("service", "VideoService"),
		deps:     deps,
		validate: newValidator(),
	}, nil
}

func (s *videoService) options(req GraphicMotionRequest) motiongraph.Options {
	fps := req.FPS
	if fps <= 0 {
		fps = s.deps.DefaultFPS
	}
	return motiongraph.Options{
		Format:                req.Format,
		TemplateStyle:         req.TemplateStyle,
		FontFamily:            req.FontFamily,
		HighlightWords:        req.HighlightWords,
		TargetSecondsPerScene: req.TargetSecondsPerScene,
		MinHoldSeconds:        req.MinHoldSeconds,
		FPS:                   fps,
		Seed:                  req.Seed,
		Tone:                  req.Tone,
	}
}

func (s *videoService) assemble(ctx context.Context, req GraphicMotionRequest) (*motiongraph.Result, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	res, err := s.deps.Assembler.Assemble(ctx, req.Text, s.options(req))
	if err != nil {
		s.deps.Metrics.IncTimelineFailure(types.ModeGraphicMotion)
		return nil, apierr.Internal("timeline_build_failed", err)
	}
	tl := res.Timeline
	s.deps.Metrics.ObserveTimeline(types.ModeGraphicMotion, string(res.Source), len(tl.Scenes), tl.TotalFrames, res.Elapsed)
	return res, nil
}

func (s *videoService) Preview(ctx context.Context, req GraphicMotionRequest) (*motiongraph.Result, error) {
	return s.assemble(ctx, req)
}

func (s *videoService) Storyboard(ctx context.Context, req GraphicMotionRequest) ([]byte, error) {
	if s.deps.Storyboard == nil {
		return nil, apierr.New(http.StatusServiceUnavailable, "storyboard_unavailable", errors.New("storyboard renderer not configured"))
	}
	res, err := s.assemble(ctx, req)
	if err != nil {
		return nil, err
	}
	png, err := s.deps.Storyboard.Render(ctx, res.Timeline, storyboard.Options{})
	if err != nil {
		return nil, apierr.Internal("storyboard_render_failed", err)
	}
	return png, nil
}

// GraphicMotion builds the timeline while music and plan lookups run
// alongside the scene source, then audits and hands the envelope off.
func (s *videoService) GraphicMotion(ctx context.Context, req GraphicMotionRequest) (*RenderResult, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	start := time.Now()
	userID := ctxutil.UserID(ctx)

	var (
		res       *motiongraph.Result
		music     *Music
		watermark = true
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res, err = s.assemble(gctx, req)
		return err
	})
	g.Go(func() error {
		music = s.resolveMusic(gctx, req.MusicTrackID, req.MusicVolume)
		return nil
	})
	g.Go(func() error {
		watermark = s.watermark(gctx, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	env := &RenderEnvelope{
		ProjectID: projectIDOr(req.ProjectID),
		UserID:    userID,
		Mode:      types.ModeGraphicMotion,
		Watermark: watermark,
		Music:     music,
		Timeline:  res.Timeline,
		CreatedAt: time.Now().UTC(),
	}
	run := &types.GenerationRun{
		SourceKind:    string(res.Source),
		SceneCount:    len(res.Timeline.Scenes),
		TotalFrames:   res.Timeline.TotalFrames,
		FPS:           res.Timeline.FPS,
		Seed:          res.Timeline.Seed,
		Format:        res.Timeline.Format,
		TemplateStyle: res.Timeline.TemplateStyle,
	}
	out, err := s.handOff(ctx, env, run, start)
	if out != nil {
		out.Source = string(res.Source)
	}
	return out, err
}

func (s *videoService) Captions(ctx context.Context, req CaptionsRequest) (*RenderResult, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is blank", ErrInvalidRequest)
	}
	start := time.Now()
	userID := ctxutil.UserID(ctx)

	fps := req.FPS
	if fps <= 0 {
		fps = s.deps.DefaultFPS
	}
	blocks := captions.Process(req.Text, captions.Options{
		FPS:             fps,
		Intensity:       req.Intensity,
		AnimationPreset: req.AnimationPreset,
		HighlightWords:  req.HighlightWords,
	})
	if err := captions.Validate(blocks); err != nil {
		s.deps.Metrics.IncTimelineFailure(types.ModeCaptions)
		return nil, apierr.Internal("captions_build_failed", err)
	}
	total := captions.TotalFrames(blocks)
	s.deps.Metrics.ObserveTimeline(types.ModeCaptions, "", len(blocks), total, time.Since(start))

	env := &RenderEnvelope{
		ProjectID: projectIDOr(req.ProjectID),
		UserID:    userID,
		Mode:      types.ModeCaptions,
		Watermark: s.watermark(ctx, userID),
		Music:     s.resolveMusic(ctx, req.MusicTrackID, req.MusicVolume),
		Captions:  blocks,
		FPS:       fps,
		CreatedAt: time.Now().UTC(),
	}
	run := &types.GenerationRun{
		SceneCount:  len(blocks),
		TotalFrames: total,
		FPS:         fps,
	}
	return s.handOff(ctx, env, run, start)
}

func (s *videoService) ListRuns(ctx context.Context, projectID string, limit int) ([]*types.GenerationRun, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("%w: missing project id", ErrInvalidRequest)
	}
	if s.deps.Runs == nil {
		return []*types.GenerationRun{}, nil
	}
	runs, err := s.deps.Runs.ListByProject(dbctx.From(ctx), projectID, limit)
	if err != nil {
		return nil, apierr.Internal("list_runs_failed", err)
	}
	return runs, nil
}

// handOff dispatches env and records the run. Audit failures are logged only;
// dispatch failures surface as 502.
func (s *videoService) handOff(ctx context.Context, env *RenderEnvelope, run *types.GenerationRun, start time.Time) (*RenderResult, error) {
	mode := s.deps.Dispatcher.Mode()
	receipt, dispatchErr := s.deps.Dispatcher.Dispatch(ctx, env)
	if dispatchErr != nil {
		s.deps.Metrics.IncDispatch(mode, "error")
		s.log.Error("Render dispatch failed", "project_id", env.ProjectID, "mode", mode, "error", dispatchErr)
	} else {
		s.deps.Metrics.IncDispatch(mode, receipt.Status)
	}

	run.ProjectID = env.ProjectID
	run.UserID = env.UserID
	run.RequestID = ctxutil.RequestID(ctx)
	run.Mode = env.Mode
	run.Watermark = env.Watermark
	if env.Music != nil {
		run.MusicURI = env.Music.URI
	}
	run.DispatchMode = receipt.Mode
	run.DispatchStatus = receipt.Status
	run.DispatchRef = receipt.Ref
	if dispatchErr != nil {
		run.Error = dispatchErr.Error()
	}
	run.LatencyMS = time.Since(start).Milliseconds()
	runID := s.audit(ctx, env, run)

	if dispatchErr != nil {
		return nil, apierr.BadGateway("render_dispatch_failed", fmt.Errorf("render dispatch: %w", dispatchErr))
	}
	return &RenderResult{RunID: runID, Dispatch: receipt, Envelope: env}, nil
}

func (s *videoService) audit(ctx context.Context, env *RenderEnvelope, run *types.GenerationRun) string {
	if s.deps.Runs == nil {
		return ""
	}
	var payload []byte
	var err error
	if env.Timeline != nil {
		payload, err = motiongraph.EncodeJSON(env.Timeline)
	} else {
		payload, err = json.Marshal(env.Captions)
	}
	if err != nil {
		s.log.Warn("Failed to encode run payload", "project_id", env.ProjectID, "error", err)
		payload = []byte("null")
	}
	run.Timeline = datatypes.JSON(payload)
	// The request may already be cancelled once the response is written.
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := s.deps.Runs.Create(dbctx.From(auditCtx), run); err != nil {
		s.log.Warn("Failed to record generation run", "project_id", env.ProjectID, "error", err)
		return ""
	}
	return run.ID.String()
}

func (s *videoService) resolveMusic(ctx context.Context, ref string, volume *float64) *Music {
	if s.deps.Music == nil || strings.TrimSpace(ref) == "" {
		return nil
	}
	m, err := s.deps.Music.Resolve(ctx, ref, volume)
	if err != nil {
		s.deps.Metrics.IncMusicLookup("dropped")
		s.log.Warn("Music lookup failed, rendering without music", "music_track_id", ref, "error", err)
		return nil
	}
	if m != nil {
		s.deps.Metrics.IncMusicLookup("resolved")
	}
	return m
}

func (s *videoService) watermark(ctx context.Context, userID string) bool {
	if s.deps.Entitlements == nil {
		return true
	}
	return s.deps.Entitlements.Watermark(ctx, userID)
}

func projectIDOr(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}
