package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yungbote/kinetic-backend/internal/platform/envutil"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge

	timelineBuilds   *CounterVec
	timelineDuration *HistogramVec
	timelineScenes   *HistogramVec
	timelineFrames   *HistogramVec
	sceneSource      *CounterVec

	dispatches  *CounterVec
	musicLookup *CounterVec

	queueDepth *GaugeVec
	redisUp    *Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

func Current() *Metrics {
	return instance
}

// Init returns the process-wide registry, or nil when METRICS_ENABLED is off.
// Every method is safe on a nil *Metrics.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = newMetrics()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

func newMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("kinetic_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"kinetic_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		),
		apiInflight: NewGauge("kinetic_api_inflight_requests", "In-flight API requests."),
		timelineBuilds: NewCounterVec(
			"kinetic_timeline_builds_total",
			"Timeline builds by mode/status.",
			[]string{"mode", "status"},
		),
		timelineDuration: NewHistogramVec(
			"kinetic_timeline_build_duration_seconds",
			"Timeline build latency including the scene source call.",
			[]string{"mode", "source"},
			[]float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 20, 30},
		),
		timelineScenes: NewHistogramVec(
			"kinetic_timeline_scenes",
			"Scenes per built timeline.",
			[]string{"mode"},
			[]float64{1, 2, 3, 4, 6, 8, 12, 16, 20},
		),
		timelineFrames: NewHistogramVec(
			"kinetic_timeline_frames",
			"Total frames per built timeline.",
			[]string{"mode"},
			[]float64{60, 150, 300, 600, 900, 1800, 2700, 3600},
		),
		sceneSource: NewCounterVec("kinetic_scene_source_total", "Scene breakdowns by source kind.", []string{"kind"}),
		dispatches:  NewCounterVec("kinetic_render_dispatch_total", "Render hand-offs by mode/status.", []string{"mode", "status"}),
		musicLookup: NewCounterVec("kinetic_music_lookup_total", "Music lookups by outcome.", []string{"outcome"}),
		queueDepth:  NewGaugeVec("kinetic_render_queue_depth", "Pending render payloads by queue.", []string{"queue"}),
		redisUp:     NewGauge("kinetic_redis_up", "1 when the last redis ping succeeded."),
	}
}

func (m *Metrics) StartServer(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(m.WriteHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if log != nil {
				log.Error("metrics server failed", "error", err, "addr", addr)
			}
		}
	}()
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.timelineBuilds, m.timelineDuration, m.timelineScenes, m.timelineFrames, m.sceneSource,
		m.dispatches, m.musicLookup,
		m.queueDepth, m.redisUp,
	}
	for _, wr := range writers {
		if err := wr.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveTimeline records one successful build.
func (m *Metrics) ObserveTimeline(mode, source string, scenes, frames int, dur time.Duration) {
	if m == nil {
		return
	}
	m.timelineBuilds.Inc(mode, "ok")
	m.timelineDuration.Observe(dur.Seconds(), mode, source)
	m.timelineScenes.Observe(float64(scenes), mode)
	m.timelineFrames.Observe(float64(frames), mode)
	if source != "" {
		m.sceneSource.Inc(source)
	}
}

func (m *Metrics) IncTimelineFailure(mode string) {
	if m == nil {
		return
	}
	m.timelineBuilds.Inc(mode, "error")
}

func (m *Metrics) IncDispatch(mode, status string) {
	if m == nil {
		return
	}
	m.dispatches.Inc(mode, status)
}

func (m *Metrics) IncMusicLookup(outcome string) {
	if m == nil {
		return
	}
	m.musicLookup.Inc(outcome)
}

// StartRedisCollector pings redis and samples the render queue length on an
// interval until ctx is done.
func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, rdb redis.UniversalClient, queueKey string) {
	if m == nil || rdb == nil {
		return
	}
	interval := time.Duration(envutil.Int("METRICS_SCRAPE_INTERVAL_SECONDS", 10)) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.collectRedis(ctx, log, rdb, queueKey)
			}
		}
	}()
}

func (m *Metrics) collectRedis(ctx context.Context, log *logger.Logger, rdb redis.UniversalClient, queueKey string) {
	if err := rdb.Ping(ctx).Err(); err != nil {
		m.redisUp.Set(0)
		if log != nil {
			log.Warn("metrics: redis ping failed", "error", err)
		}
		return
	}
	m.redisUp.Set(1)
	if queueKey == "" {
		return
	}
	n, err := rdb.LLen(ctx, queueKey).Result()
	if err != nil {
		return
	}
	m.queueDepth.Set(float64(n), queueKey)
}
