package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/kinetic-backend/internal/http/handlers"
	httpMW "github.com/yungbote/kinetic-backend/internal/http/middleware"
	"github.com/yungbote/kinetic-backend/internal/observability"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	Metrics        *observability.Metrics

	VideoHandler  *httpH.VideoHandler
	MusicHandler  *httpH.MusicHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Videos
		if cfg.VideoHandler != nil {
			videos := api.Group("/videos")
			videos.POST("/graphic-motion", cfg.VideoHandler.CreateGraphicMotion)
			videos.POST("/graphic-motion/preview", cfg.VideoHandler.PreviewGraphicMotion)
			videos.POST("/graphic-motion/storyboard", cfg.VideoHandler.StoryboardGraphicMotion)
			videos.POST("/captions", cfg.VideoHandler.CreateCaptions)
			videos.GET("/projects/:projectId/runs", cfg.VideoHandler.ListProjectRuns)
		}

		// Music catalog
		if cfg.MusicHandler != nil {
			api.GET("/music/tracks", cfg.MusicHandler.ListTracks)
		}
	}

	return r
}
