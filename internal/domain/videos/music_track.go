package videos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MusicTrack maps a catalog entry to an object in the music bucket.
type MusicTrack struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Slug          string         `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Title         string         `gorm:"column:title;not null" json:"title"`
	StorageKey    string         `gorm:"column:storage_key;not null" json:"storage_key"`
	DefaultVolume float64        `gorm:"column:default_volume;not null;default:0.3" json:"default_volume"`
	Active        bool           `gorm:"column:active;not null;default:true;index" json:"active"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (MusicTrack) TableName() string { return "music_track" }

func (m *MusicTrack) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
