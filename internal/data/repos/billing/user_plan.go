package billing

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type UserPlanRepo interface {
	GetByUserID(dbc dbctx.Context, userID string) (*types.UserPlan, error)
	Upsert(dbc dbctx.Context, plan *types.UserPlan) error
}

type userPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPlanRepo(db *gorm.DB, baseLog *logger.Logger) UserPlanRepo {
	return &userPlanRepo{
		db:  db,
		log: baseLog.With("repo", "UserPlanRepo"),
	}
}

func (r *userPlanRepo) GetByUserID(dbc dbctx.Context, userID string) (*types.UserPlan, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	var plan types.UserPlan
	if err := dbc.Conn(r.db).Where("user_id = ?", userID).Limit(1).Find(&plan).Error; err != nil {
		return nil, err
	}
	if plan.UserID == "" {
		return nil, nil
	}
	return &plan, nil
}

func (r *userPlanRepo) Upsert(dbc dbctx.Context, plan *types.UserPlan) error {
	if plan == nil || strings.TrimSpace(plan.UserID) == "" {
		return nil
	}
	return dbc.Conn(r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tier", "status", "updated_at"}),
	}).Create(plan).Error
}
