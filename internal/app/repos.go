package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/kinetic-backend/internal/data/repos"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type Repos struct {
	GenerationRun repos.GenerationRunRepo
	MusicTrack    repos.MusicTrackRepo
	UserPlan      repos.UserPlanRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		GenerationRun: repos.NewGenerationRunRepo(db, log),
		MusicTrack:    repos.NewMusicTrackRepo(db, log),
		UserPlan:      repos.NewUserPlanRepo(db, log),
	}
}
