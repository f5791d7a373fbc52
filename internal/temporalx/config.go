package temporalx

import (
	"time"

	"github.com/yungbote/kinetic-backend/internal/platform/envutil"
)

const DefaultRenderWorkflow = "RenderGraphicMotion"

type Config struct {
	Address   string
	Namespace string
	TaskQueue string
	// RenderWorkflow is the workflow type registered by the render worker.
	RenderWorkflow string
	// RunTimeout bounds a single render workflow execution.
	RunTimeout time.Duration

	AutoRegisterNamespace bool
	RetentionDays         int

	ClientCertPath string
	ClientKeyPath  string
	ClientCAPath   string

	DialTimeout time.Duration
	DialMaxWait time.Duration
}

func LoadConfig() Config {
	return Config{
		Address:               envutil.String("TEMPORAL_ADDRESS", ""),
		Namespace:             envutil.String("TEMPORAL_NAMESPACE", "kinetic"),
		TaskQueue:             envutil.String("TEMPORAL_TASK_QUEUE", "render-graphic-motion"),
		RenderWorkflow:        envutil.String("TEMPORAL_RENDER_WORKFLOW", DefaultRenderWorkflow),
		RunTimeout:            time.Duration(envutil.Int("TEMPORAL_RENDER_TIMEOUT_MINUTES", 30)) * time.Minute,
		AutoRegisterNamespace: envutil.Bool("TEMPORAL_AUTO_REGISTER_NAMESPACE", false),
		RetentionDays:         envutil.Int("TEMPORAL_NAMESPACE_RETENTION_DAYS", 7),

		ClientCertPath: envutil.String("TEMPORAL_CLIENT_CERT_PATH", ""),
		ClientKeyPath:  envutil.String("TEMPORAL_CLIENT_KEY_PATH", ""),
		ClientCAPath:   envutil.String("TEMPORAL_CLIENT_CA_PATH", ""),

		DialTimeout: time.Duration(envutil.Int("TEMPORAL_DIAL_TIMEOUT_SECONDS", 5)) * time.Second,
		DialMaxWait: time.Duration(envutil.Int("TEMPORAL_DIAL_MAX_WAIT_SECONDS", 30)) * time.Second,
	}
}
