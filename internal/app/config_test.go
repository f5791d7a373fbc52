package app

import (
	"testing"
	"time"

	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DRIVER", "RENDER_QUEUE_MODE", "DEFAULT_FPS", "SCENE_SOURCE_TIMEOUT_SECONDS", "RENDER_QUEUE_KEY", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(logger.Nop())
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr: want=:8080 got=%q", cfg.HTTPAddr)
	}
	if cfg.DB.Driver != "postgres" || cfg.RenderQueueMode != "redis" {
		t.Fatalf("driver/mode: got=%q/%q", cfg.DB.Driver, cfg.RenderQueueMode)
	}
	if cfg.DefaultFPS != 30 || cfg.SceneSourceTimeout != 20*time.Second {
		t.Fatalf("fps/timeout: got=%d/%v", cfg.DefaultFPS, cfg.SceneSourceTimeout)
	}
	if cfg.Redis.Key != "render:graphic_motion" {
		t.Fatalf("queue key: got=%q", cfg.Redis.Key)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatalf("expected default CORS origins")
	}
}

func TestWireServices_NoneModeWithoutClients(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("RENDER_QUEUE_MODE", "none")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("MUSIC_GCS_BUCKET_NAME", "")
	log := logger.Nop()
	cfg := LoadConfig(log)

	clients, err := wireClients(log, cfg)
	if err != nil {
		t.Fatalf("wireClients: %v", err)
	}
	if clients.OpenAI != nil || clients.RenderQueue != nil || clients.RenderStarter != nil || clients.MusicBucket != nil {
		t.Fatalf("expected no clients: %+v", clients)
	}
	svcs, err := wireServices(log, cfg, Repos{}, clients, nil)
	if err != nil {
		t.Fatalf("wireServices: %v", err)
	}
	if svcs.Dispatcher.Mode() != "none" {
		t.Fatalf("dispatcher mode: want=none got=%s", svcs.Dispatcher.Mode())
	}
}

func TestWireServices_RejectsRedisModeWithoutQueue(t *testing.T) {
	log := logger.Nop()
	_, err := wireServices(log, Config{RenderQueueMode: "redis"}, Repos{}, Clients{}, nil)
	if err == nil {
		t.Fatalf("expected error for redis mode without queue")
	}
}
