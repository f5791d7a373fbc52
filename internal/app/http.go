package app

import (
	"github.com/yungbote/kinetic-backend/internal/http"
	httpH "github.com/yungbote/kinetic-backend/internal/http/handlers"
	"github.com/yungbote/kinetic-backend/internal/observability"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Video  *httpH.VideoHandler
	Music  *httpH.MusicHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Video:  httpH.NewVideoHandler(log, services.Video),
		Music:  httpH.NewMusicHandler(services.Music),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:            log,
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metrics,
		VideoHandler:   handlers.Video,
		MusicHandler:   handlers.Music,
		HealthHandler:  handlers.Health,
	})
}
