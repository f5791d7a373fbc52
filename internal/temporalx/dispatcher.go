package temporalx

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	temporalsdkclient "go.temporal.io/sdk/client"

	"github.com/yungbote/kinetic-backend/internal/platform/ctxutil"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

// WorkflowStarter is the part of the Temporal client the dispatcher uses.
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options temporalsdkclient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (temporalsdkclient.WorkflowRun, error)
}

// RenderStarter starts one render workflow per request. The workflow ID pairs
// the project with the inbound request id, so a project can be re-rendered any
// number of times while a replayed request is rejected as already started.
type RenderStarter struct {
	log     *logger.Logger
	starter WorkflowStarter
	cfg     Config
}

func NewRenderStarter(log *logger.Logger, starter WorkflowStarter, cfg Config) (*RenderStarter, error) {
	if starter == nil {
		return nil, fmt.Errorf("temporal client is not configured")
	}
	if strings.TrimSpace(cfg.TaskQueue) == "" {
		return nil, fmt.Errorf("missing TEMPORAL_TASK_QUEUE")
	}
	if strings.TrimSpace(cfg.RenderWorkflow) == "" {
		cfg.RenderWorkflow = DefaultRenderWorkflow
	}
	return &RenderStarter{log: log.With("service", "TemporalRenderStarter"), starter: starter, cfg: cfg}, nil
}

func RenderWorkflowID(projectID, requestID string) string {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return "render-" + strings.TrimSpace(projectID) + "-" + requestID
}

// Start hands payload to the render workflow and returns the run ID.
func (r *RenderStarter) Start(ctx context.Context, projectID string, payload any) (string, error) {
	if strings.TrimSpace(projectID) == "" {
		return "", fmt.Errorf("missing project id")
	}
	opts := temporalsdkclient.StartWorkflowOptions{
		ID:                       RenderWorkflowID(projectID, ctxutil.RequestID(ctx)),
		TaskQueue:                r.cfg.TaskQueue,
		WorkflowExecutionTimeout: r.cfg.RunTimeout,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}
	run, err := r.starter.ExecuteWorkflow(ctx, opts, r.cfg.RenderWorkflow, payload)
	if err != nil {
		return "", fmt.Errorf("start render workflow: %w", err)
	}
	r.log.Info("Render workflow started", "workflow_id", run.GetID(), "run_id", run.GetRunID(), "task_queue", r.cfg.TaskQueue)
	return run.GetRunID(), nil
}
