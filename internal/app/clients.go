package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	temporalsdkclient "go.temporal.io/sdk/client"

	"github.com/yungbote/kinetic-backend/internal/clients/redis"
	"github.com/yungbote/kinetic-backend/internal/platform/gcp"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
	"github.com/yungbote/kinetic-backend/internal/platform/openai"
	"github.com/yungbote/kinetic-backend/internal/services"
	"github.com/yungbote/kinetic-backend/internal/temporalx"
)

type Clients struct {
	OpenAI        openai.Client
	RenderQueue   redis.RenderQueue
	Temporal      temporalsdkclient.Client
	RenderStarter *temporalx.RenderStarter
	MusicBucket   gcp.MusicBucket
}

// wireClients builds the external clients. Optional integrations stay nil when
// their configuration is absent; the transport picked by RenderQueueMode is
// required.
func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	// Openai
	oa, err := openai.NewClient(log, cfg.OpenAI)
	switch {
	case errors.Is(err, openai.ErrDisabled):
		log.Warn("OPENAI_API_KEY not set; scene source uses the deterministic fallback")
	case err != nil:
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	default:
		out.OpenAI = oa
	}

	mode := strings.ToLower(strings.TrimSpace(cfg.RenderQueueMode))

	// Redis
	if mode == services.DispatchModeRedis || cfg.Redis.Addr != "" {
		q, err := redis.NewRenderQueue(log, cfg.Redis)
		if err != nil {
			if mode == services.DispatchModeRedis {
				return Clients{}, fmt.Errorf("init render queue: %w", err)
			}
			log.Warn("Redis unavailable; queue metrics disabled", "error", err)
		} else {
			out.RenderQueue = q
		}
	}

	// Temporal
	if mode == services.DispatchModeTemporal {
		tc, err := temporalx.NewClient(log, cfg.Temporal)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init temporal client: %w", err)
		}
		if tc == nil {
			out.Close()
			return Clients{}, fmt.Errorf("RENDER_QUEUE_MODE=temporal requires TEMPORAL_ADDRESS")
		}
		out.Temporal = tc
		starter, err := temporalx.NewRenderStarter(log, tc, cfg.Temporal)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init render starter: %w", err)
		}
		out.RenderStarter = starter
	}

	// Gcs
	if cfg.MusicBucketName != "" {
		b, err := gcp.NewMusicBucket(context.Background(), log, cfg.MusicBucketName)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init music bucket: %w", err)
		}
		out.MusicBucket = b
	} else {
		log.Warn("MUSIC_GCS_BUCKET_NAME not set; music lookups disabled")
	}

	return out, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.RenderQueue != nil {
		_ = c.RenderQueue.Close()
	}
	if c.Temporal != nil {
		c.Temporal.Close()
	}
	if c.MusicBucket != nil {
		_ = c.MusicBucket.Close()
	}
}
