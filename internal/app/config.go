package app

import (
	"time"

	"github.com/yungbote/kinetic-backend/internal/clients/redis"
	"github.com/yungbote/kinetic-backend/internal/data/db"
	httpMW "github.com/yungbote/kinetic-backend/internal/http/middleware"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
	"github.com/yungbote/kinetic-backend/internal/platform/envutil"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
	"github.com/yungbote/kinetic-backend/internal/platform/openai"
	"github.com/yungbote/kinetic-backend/internal/services"
	"github.com/yungbote/kinetic-backend/internal/temporalx"
)

type Config struct {
	ServiceName string
	Environment string
	Version     string
	HTTPAddr    string

	DB       db.Config
	OpenAI   openai.Config
	Redis    redis.Config
	Temporal temporalx.Config

	SceneSourceTimeout   time.Duration
	SceneSourceMaxScenes int

	// RenderQueueMode selects the hand-off transport: redis, temporal or none.
	RenderQueueMode string
	MusicBucketName string
	DefaultFPS      int

	AllowedOrigins []string
	MetricsAddr    string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		ServiceName: envutil.String("SERVICE_NAME", "kinetic-backend"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
		HTTPAddr:    envutil.String("HTTP_ADDR", ":8080"),
		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", db.DriverPostgres),
			DSN:        envutil.String("POSTGRES_DSN", ""),
			SQLitePath: envutil.String("SQLITE_PATH", "kinetic.db"),
			Silent:     envutil.Bool("DB_SILENT", true),
		},
		OpenAI: openai.ConfigFromEnv(),
		Redis: redis.Config{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
			Key:      envutil.String("RENDER_QUEUE_KEY", redis.DefaultRenderQueueKey),
		},
		Temporal:             temporalx.LoadConfig(),
		SceneSourceTimeout:   time.Duration(envutil.Int("SCENE_SOURCE_TIMEOUT_SECONDS", 20)) * time.Second,
		SceneSourceMaxScenes: envutil.Int("SCENE_SOURCE_MAX_SCENES", 12),
		RenderQueueMode:      envutil.String("RENDER_QUEUE_MODE", services.DispatchModeRedis),
		MusicBucketName:      envutil.String("MUSIC_GCS_BUCKET_NAME", ""),
		DefaultFPS:           envutil.Int("DEFAULT_FPS", motiongraph.DefaultFPS),
		AllowedOrigins:       httpMW.ParseOrigins(envutil.String("CORS_ALLOWED_ORIGINS", "")),
		MetricsAddr:          envutil.String("METRICS_ADDR", ""),
	}

	log.Info("Config loaded",
		"env", cfg.Environment,
		"http_addr", cfg.HTTPAddr,
		"db_driver", cfg.DB.Driver,
		"render_queue_mode", cfg.RenderQueueMode,
		"scene_source_ai", cfg.OpenAI.APIKey != "",
		"music_bucket", cfg.MusicBucketName != "",
		"default_fps", cfg.DefaultFPS,
	)
	return cfg
}
