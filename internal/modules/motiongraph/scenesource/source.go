package scenesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

// ErrSourceDisabled means no generator is configured and every request takes
// the fallback path.
var ErrSourceDisabled = errors.New("scene source: generator disabled")

// JSONGenerator is the slice of the LLM client the source needs.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)
}

type Config struct {
	Timeout   time.Duration
	MaxScenes int
}

type Source struct {
	gen       JSONGenerator
	log       *logger.Logger
	timeout   time.Duration
	maxScenes int
}

// New returns a source that asks gen first and falls back on any failure. A
// nil gen means fallback only.
func New(log *logger.Logger, gen JSONGenerator, cfg Config) *Source {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	maxScenes := cfg.MaxScenes
	if maxScenes <= 0 {
		maxScenes = 12
	}
	return &Source{
		gen:       gen,
		log:       log.With("service", "SceneSource"),
		timeout:   timeout,
		maxScenes: maxScenes,
	}
}

func (s *Source) Breakdown(ctx context.Context, text string) motiongraph.SceneBreakdown {
	bd, err := s.generate(ctx, text)
	if err == nil {
		return bd
	}
	if errors.Is(err, ErrSourceDisabled) {
		s.log.Debug("Scene source disabled, using fallback")
	} else {
		s.log.Warn("Scene source failed, using fallback", "error", err)
	}
	return motiongraph.SceneBreakdown{
		Scenes: Fallback(text),
		Kind:   motiongraph.SourceFallback,
	}
}

func (s *Source) generate(ctx context.Context, text string) (motiongraph.SceneBreakdown, error) {
	if s.gen == nil {
		return motiongraph.SceneBreakdown{}, ErrSourceDisabled
	}
	if strings.TrimSpace(text) == "" {
		return motiongraph.SceneBreakdown{}, errNoScenes
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	obj, err := s.gen.GenerateJSON(callCtx, systemPrompt(s.maxScenes), userPrompt(text), schemaName, breakdownSchema())
	if err != nil {
		return motiongraph.SceneBreakdown{}, fmt.Errorf("generate scenes: %w", err)
	}
	parsed, err := decodeBreakdown(obj)
	if err != nil {
		return motiongraph.SceneBreakdown{}, err
	}
	scenes, err := normalize(parsed.Scenes, s.maxScenes)
	if err != nil {
		return motiongraph.SceneBreakdown{}, err
	}
	return motiongraph.SceneBreakdown{
		Scenes:     scenes,
		GlobalTone: trimmed(parsed.GlobalTone),
		Kind:       motiongraph.SourceAI,
	}, nil
}

type aiBreakdown struct {
	GlobalTone *string   `json:"globalTone"`
	Scenes     []rawHint `json:"scenes"`
}

func decodeBreakdown(obj map[string]any) (aiBreakdown, error) {
	var out aiBreakdown
	if obj == nil {
		return out, fmt.Errorf("decode scenes: empty response")
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return out, fmt.Errorf("decode scenes: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode scenes: %w", err)
	}
	return out, nil
}
