package videos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ModeGraphicMotion = "graphic-motion"
	ModeCaptions      = "captions"
)

const (
	DispatchStatusQueued  = "queued"
	DispatchStatusSkipped = "skipped"
	DispatchStatusFailed  = "failed"
)

// GenerationRun is the audit row written for every built timeline.
type GenerationRun struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID      string         `gorm:"column:project_id;not null;index" json:"project_id"`
	UserID         string         `gorm:"column:user_id;index" json:"user_id,omitempty"`
	RequestID      string         `gorm:"column:request_id" json:"request_id,omitempty"`
	Mode           string         `gorm:"column:mode;not null;index" json:"mode"`
	SourceKind     string         `gorm:"column:source_kind" json:"source_kind,omitempty"`
	SceneCount     int            `gorm:"column:scene_count;not null;default:0" json:"scene_count"`
	TotalFrames    int            `gorm:"column:total_frames;not null;default:0" json:"total_frames"`
	FPS            int            `gorm:"column:fps;not null;default:0" json:"fps"`
	Seed           int64          `gorm:"column:seed" json:"seed"`
	Format         string         `gorm:"column:format" json:"format,omitempty"`
	TemplateStyle  string         `gorm:"column:template_style" json:"template_style,omitempty"`
	Watermark      bool           `gorm:"column:watermark;not null;default:true" json:"watermark"`
	MusicURI       string         `gorm:"column:music_uri" json:"music_uri,omitempty"`
	DispatchMode   string         `gorm:"column:dispatch_mode" json:"dispatch_mode,omitempty"`
	DispatchStatus string         `gorm:"column:dispatch_status;index" json:"dispatch_status,omitempty"`
	DispatchRef    string         `gorm:"column:dispatch_ref" json:"dispatch_ref,omitempty"`
	Error          string         `gorm:"column:error" json:"error,omitempty"`
	LatencyMS      int64          `gorm:"column:latency_ms" json:"latency_ms"`
	Timeline       datatypes.JSON `gorm:"column:timeline" json:"timeline"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (GenerationRun) TableName() string { return "generation_run" }

func (r *GenerationRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
