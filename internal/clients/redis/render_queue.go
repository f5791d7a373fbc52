package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

const DefaultRenderQueueKey = "render:graphic_motion"

// RenderQueue is a redis list consumed by the render workers (BRPOP on Key).
type RenderQueue interface {
	Push(ctx context.Context, payload []byte) error
	Depth(ctx context.Context) (int64, error)
	Key() string
	Client() goredis.UniversalClient
	Close() error
}

type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type renderQueue struct {
	log *logger.Logger
	rdb *goredis.Client
	key string
}

func NewRenderQueue(log *logger.Logger, cfg Config) (RenderQueue, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = DefaultRenderQueueKey
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &renderQueue{
		log: log.With("service", "RedisRenderQueue"),
		rdb: rdb,
		key: key,
	}, nil
}

func (q *renderQueue) Push(ctx context.Context, payload []byte) error {
	if q == nil || q.rdb == nil {
		return fmt.Errorf("redis render queue not initialized")
	}
	if len(payload) == 0 {
		return fmt.Errorf("empty render payload")
	}
	depth, err := q.rdb.LPush(ctx, q.key, payload).Result()
	if err != nil {
		return fmt.Errorf("lpush %s: %w", q.key, err)
	}
	q.log.Debug("Render job queued", "key", q.key, "depth", depth, "bytes", len(payload))
	return nil
}

func (q *renderQueue) Depth(ctx context.Context) (int64, error) {
	if q == nil || q.rdb == nil {
		return 0, fmt.Errorf("redis render queue not initialized")
	}
	return q.rdb.LLen(ctx, q.key).Result()
}

func (q *renderQueue) Key() string { return q.key }

func (q *renderQueue) Client() goredis.UniversalClient { return q.rdb }

func (q *renderQueue) Close() error {
	if q == nil || q.rdb == nil {
		return nil
	}
	return q.rdb.Close()
}
