package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/kinetic-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Generation audit
		&types.GenerationRun{},

		// Catalog
		&types.MusicTrack{},

		// Billing
		&types.UserPlan{},
	)
}

// EnsureIndexes adds postgres-only indexes gorm tags cannot express.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_generation_run_project_created
		ON generation_run(project_id, created_at DESC)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_generation_run_project_created: %w", err)
	}
	return nil
}
