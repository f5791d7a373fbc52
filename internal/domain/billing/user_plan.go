package billing

import (
	"time"

	"gorm.io/gorm"
)

const (
	TierFree = "free"
	TierPro  = "pro"
	TierTeam = "team"
)

// UserPlan is the subscription tier of a user, synced from the billing system.
type UserPlan struct {
	UserID    string         `gorm:"column:user_id;primaryKey" json:"user_id"`
	Tier      string         `gorm:"column:tier;not null;default:free;index" json:"tier"`
	Status    string         `gorm:"column:status;not null;default:active" json:"status"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserPlan) TableName() string { return "user_plan" }

// Watermarked reports whether renders for this plan carry a watermark.
func (p *UserPlan) Watermarked() bool {
	if p == nil {
		return true
	}
	if p.Status != "" && p.Status != "active" && p.Status != "trialing" {
		return true
	}
	return p.Tier == "" || p.Tier == TierFree
}
