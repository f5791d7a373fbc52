package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/kinetic-backend/internal/data/repos/billing"
	"github.com/yungbote/kinetic-backend/internal/data/repos/videos"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type GenerationRunRepo = videos.GenerationRunRepo
type MusicTrackRepo = videos.MusicTrackRepo
type UserPlanRepo = billing.UserPlanRepo

func NewGenerationRunRepo(db *gorm.DB, baseLog *logger.Logger) GenerationRunRepo {
	return videos.NewGenerationRunRepo(db, baseLog)
}
func NewMusicTrackRepo(db *gorm.DB, baseLog *logger.Logger) MusicTrackRepo {
	return videos.NewMusicTrackRepo(db, baseLog)
}
func NewUserPlanRepo(db *gorm.DB, baseLog *logger.Logger) UserPlanRepo {
	return billing.NewUserPlanRepo(db, baseLog)
}
