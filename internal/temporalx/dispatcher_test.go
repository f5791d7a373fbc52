package temporalx

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	enumspb "go.temporal.io/api/enums/v1"
	temporalsdkclient "go.temporal.io/sdk/client"

	"github.com/yungbote/kinetic-backend/internal/platform/ctxutil"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type fakeRun struct {
	temporalsdkclient.WorkflowRun
	id    string
	runID string
}

func (f fakeRun) GetID() string    { return f.id }
func (f fakeRun) GetRunID() string { return f.runID }

type fakeStarter struct {
	opts     temporalsdkclient.StartWorkflowOptions
	workflow interface{}
	args     []interface{}
	err      error
}

func (f *fakeStarter) ExecuteWorkflow(_ context.Context, options temporalsdkclient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (temporalsdkclient.WorkflowRun, error) {
	f.opts, f.workflow, f.args = options, workflow, args
	if f.err != nil {
		return nil, f.err
	}
	return fakeRun{id: options.ID, runID: "run-1"}, nil
}

func TestRenderStarter_StartsWorkflowPerProject(t *testing.T) {
	fs := &fakeStarter{}
	rs, err := NewRenderStarter(logger.Nop(), fs, Config{TaskQueue: "render", RunTimeout: time.Minute})
	if err != nil {
		t.Fatalf("NewRenderStarter: %v", err)
	}
	ctx := ctxutil.WithTraceData(context.Background(), &ctxutil.TraceData{RequestID: "req-9"})
	runID, err := rs.Start(ctx, "proj-1", map[string]string{"projectId": "proj-1"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if runID != "run-1" {
		t.Fatalf("run id: want=run-1 got=%s", runID)
	}
	if fs.opts.ID != "render-proj-1-req-9" || fs.opts.TaskQueue != "render" {
		t.Fatalf("options: %+v", fs.opts)
	}
	if fs.opts.WorkflowIDReusePolicy != enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE {
		t.Fatalf("reuse policy: want=ALLOW_DUPLICATE got=%v", fs.opts.WorkflowIDReusePolicy)
	}
	if fs.workflow != DefaultRenderWorkflow || len(fs.args) != 1 {
		t.Fatalf("workflow=%v args=%d", fs.workflow, len(fs.args))
	}
}

func TestRenderStarter_RerenderGetsFreshWorkflowID(t *testing.T) {
	fs := &fakeStarter{}
	rs, err := NewRenderStarter(logger.Nop(), fs, Config{TaskQueue: "render"})
	if err != nil {
		t.Fatalf("NewRenderStarter: %v", err)
	}

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		if _, err := rs.Start(context.Background(), "proj-1", nil); err != nil {
			t.Fatalf("Start %d: %v", i, err)
		}
		if !strings.HasPrefix(fs.opts.ID, "render-proj-1-") {
			t.Fatalf("id prefix: got=%s", fs.opts.ID)
		}
		ids[fs.opts.ID] = true
	}
	if len(ids) != 3 {
		t.Fatalf("re-renders share workflow ids: %v", ids)
	}

	first := RenderWorkflowID("proj-1", "req-1")
	if again := RenderWorkflowID("proj-1", "req-1"); again != first {
		t.Fatalf("replayed request: want=%s got=%s", first, again)
	}
	if other := RenderWorkflowID("proj-1", "req-2"); other == first {
		t.Fatalf("distinct requests share id %s", other)
	}
}

func TestRenderStarter_Errors(t *testing.T) {
	if _, err := NewRenderStarter(logger.Nop(), nil, Config{TaskQueue: "q"}); err == nil {
		t.Fatalf("expected error for nil starter")
	}
	rs, _ := NewRenderStarter(logger.Nop(), &fakeStarter{err: errors.New("unavailable")}, Config{TaskQueue: "q"})
	if _, err := rs.Start(context.Background(), "p", nil); err == nil {
		t.Fatalf("expected start error")
	}
	if _, err := rs.Start(context.Background(), " ", nil); err == nil {
		t.Fatalf("expected error for blank project")
	}
}

func TestClampBackoff(t *testing.T) {
	if got := clampBackoff(250*time.Millisecond, time.Second, 1); got != 250*time.Millisecond {
		t.Fatalf("attempt 1: got=%v", got)
	}
	if got := clampBackoff(250*time.Millisecond, time.Second, 10); got != time.Second {
		t.Fatalf("attempt 10: got=%v", got)
	}
}
