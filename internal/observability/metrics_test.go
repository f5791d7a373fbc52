package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/x", "200", time.Millisecond)
	m.ObserveTimeline("graphic-motion", "ai", 3, 300, time.Millisecond)
	m.IncDispatch("redis", "ok")
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("nil write: %v", err)
	}
}

func TestMetrics_ObserveTimeline(t *testing.T) {
	m := newMetrics()
	m.ObserveTimeline("graphic-motion", "fallback", 4, 480, 20*time.Millisecond)
	m.IncTimelineFailure("graphic-motion")
	m.IncDispatch("redis", "ok")

	if got := m.timelineBuilds.Value("graphic-motion", "ok"); got != 1 {
		t.Fatalf("builds ok: want=1 got=%v", got)
	}
	if got := m.timelineBuilds.Value("graphic-motion", "error"); got != 1 {
		t.Fatalf("builds error: want=1 got=%v", got)
	}
	if got := m.timelineScenes.Count("graphic-motion"); got != 1 {
		t.Fatalf("scene histogram count: want=1 got=%d", got)
	}
	if got := m.sceneSource.Value("fallback"); got != 1 {
		t.Fatalf("scene source: want=1 got=%v", got)
	}

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`kinetic_timeline_builds_total{mode="graphic-motion",status="ok"} 1.000000`,
		`kinetic_timeline_scenes_bucket{mode="graphic-motion",le="4"} 1`,
		`kinetic_timeline_scenes_bucket{mode="graphic-motion",le="3"} 0`,
		`kinetic_render_dispatch_total{mode="redis",status="ok"} 1.000000`,
		"# TYPE kinetic_api_inflight_requests gauge",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestLabelString_Escapes(t *testing.T) {
	got := labelString([]string{"a", "b"}, []string{`x"y`})
	if got != `{a="x\"y",b="unknown"}` {
		t.Fatalf("labels: got=%s", got)
	}
	if got := withLe("", "+Inf"); got != `{le="+Inf"}` {
		t.Fatalf("withLe: got=%s", got)
	}
}

func TestParseHeaders(t *testing.T) {
	h := parseHeaders(" api-key = abc , broken, =x ")
	if len(h) != 1 || h["api-key"] != "abc" {
		t.Fatalf("headers: got=%v", h)
	}
	if parseHeaders("") != nil {
		t.Fatalf("expected nil for empty")
	}
}
