package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

const (
	DispatchModeRedis    = "redis"
	DispatchModeTemporal = "temporal"
	DispatchModeNone     = "none"
)

// DispatchReceipt records where a render envelope went.
type DispatchReceipt struct {
	Mode   string `json:"mode"`
	Status string `json:"status"`
	Ref    string `json:"ref,omitempty"`
}

// RenderDispatcher hands a finished envelope to the render workers.
type RenderDispatcher interface {
	Mode() string
	Dispatch(ctx context.Context, env *RenderEnvelope) (DispatchReceipt, error)
}

// RenderQueue is the redis list the workers consume.
type RenderQueue interface {
	Push(ctx context.Context, payload []byte) error
	Key() string
}

// WorkflowStarter starts one render workflow per project.
type WorkflowStarter interface {
	Start(ctx context.Context, projectID string, payload any) (string, error)
}

func NewRenderDispatcher(log *logger.Logger, mode string, queue RenderQueue, starter WorkflowStarter) (RenderDispatcher, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case DispatchModeRedis:
		if queue == nil {
			return nil, fmt.Errorf("render dispatch mode %q requires a redis queue", mode)
		}
		return &queueDispatcher{log: log.With("service", "RenderDispatcher", "mode", mode), queue: queue}, nil
	case DispatchModeTemporal:
		if starter == nil {
			return nil, fmt.Errorf("render dispatch mode %q requires a temporal client", mode)
		}
		return &workflowDispatcher{log: log.With("service", "RenderDispatcher", "mode", mode), starter: starter}, nil
	case "", DispatchModeNone:
		return noopDispatcher{}, nil
	default:
		return nil, fmt.Errorf("unsupported RENDER_QUEUE_MODE %q", mode)
	}
}

type queueDispatcher struct {
	log   *logger.Logger
	queue RenderQueue
}

func (d *queueDispatcher) Mode() string { return DispatchModeRedis }

func (d *queueDispatcher) Dispatch(ctx context.Context, env *RenderEnvelope) (DispatchReceipt, error) {
	receipt := DispatchReceipt{Mode: DispatchModeRedis, Status: types.DispatchStatusFailed}
	payload, err := json.Marshal(env)
	if err != nil {
		return receipt, fmt.Errorf("encode render envelope: %w", err)
	}
	if err := d.queue.Push(ctx, payload); err != nil {
		return receipt, err
	}
	d.log.Info("Render envelope queued", "project_id", env.ProjectID, "bytes", len(payload))
	receipt.Status = types.DispatchStatusQueued
	receipt.Ref = d.queue.Key()
	return receipt, nil
}

type workflowDispatcher struct {
	log     *logger.Logger
	starter WorkflowStarter
}

func (d *workflowDispatcher) Mode() string { return DispatchModeTemporal }

func (d *workflowDispatcher) Dispatch(ctx context.Context, env *RenderEnvelope) (DispatchReceipt, error) {
	receipt := DispatchReceipt{Mode: DispatchModeTemporal, Status: types.DispatchStatusFailed}
	runID, err := d.starter.Start(ctx, env.ProjectID, env)
	if err != nil {
		return receipt, err
	}
	receipt.Status = types.DispatchStatusQueued
	receipt.Ref = runID
	return receipt, nil
}

type noopDispatcher struct{}

func (noopDispatcher) Mode() string { return DispatchModeNone }

func (noopDispatcher) Dispatch(context.Context, *RenderEnvelope) (DispatchReceipt, error) {
	return DispatchReceipt{Mode: DispatchModeNone, Status: types.DispatchStatusSkipped}, nil
}
