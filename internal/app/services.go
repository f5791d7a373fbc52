package app

import (
	"fmt"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph/scenesource"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph/storyboard"
	"github.com/yungbote/kinetic-backend/internal/observability"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
	"github.com/yungbote/kinetic-backend/internal/services"
)

type Services struct {
	Assembler    *motiongraph.Assembler
	Storyboard   *storyboard.Renderer
	Music        services.MusicResolver
	Entitlements services.EntitlementService
	Dispatcher   services.RenderDispatcher
	Video        services.VideoService
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	var gen scenesource.JSONGenerator
	if clients.OpenAI != nil {
		gen = clients.OpenAI
	}
	source := scenesource.New(log, gen, scenesource.Config{
		Timeout:   cfg.SceneSourceTimeout,
		MaxScenes: cfg.SceneSourceMaxScenes,
	})
	assembler := motiongraph.NewAssembler(log, source)

	renderer, err := storyboard.NewRenderer()
	if err != nil {
		return Services{}, fmt.Errorf("init storyboard renderer: %w", err)
	}

	var starter services.WorkflowStarter
	if clients.RenderStarter != nil {
		starter = clients.RenderStarter
	}
	var queue services.RenderQueue
	if clients.RenderQueue != nil {
		queue = clients.RenderQueue
	}
	dispatcher, err := services.NewRenderDispatcher(log, cfg.RenderQueueMode, queue, starter)
	if err != nil {
		return Services{}, fmt.Errorf("init render dispatcher: %w", err)
	}

	music := services.NewMusicResolver(log, repos.MusicTrack, clients.MusicBucket)
	entitlements := services.NewEntitlementService(log, repos.UserPlan)

	video, err := services.NewVideoService(log, services.VideoServiceDeps{
		Assembler:    assembler,
		Storyboard:   renderer,
		Music:        music,
		Entitlements: entitlements,
		Dispatcher:   dispatcher,
		Runs:         repos.GenerationRun,
		Metrics:      metrics,
		DefaultFPS:   cfg.DefaultFPS,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init video service: %w", err)
	}

	return Services{
		Assembler:    assembler,
		Storyboard:   renderer,
		Music:        music,
		Entitlements: entitlements,
		Dispatcher:   dispatcher,
		Video:        video,
	}, nil
}
