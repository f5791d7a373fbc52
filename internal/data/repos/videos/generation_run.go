package videos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type GenerationRunRepo interface {
	Create(dbc dbctx.Context, run *types.GenerationRun) (*types.GenerationRun, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.GenerationRun, error)
	ListByProject(dbc dbctx.Context, projectID string, limit int) ([]*types.GenerationRun, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type generationRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGenerationRunRepo(db *gorm.DB, baseLog *logger.Logger) GenerationRunRepo {
	return &generationRunRepo{
		db:  db,
		log: baseLog.With("repo", "GenerationRunRepo"),
	}
}

func (r *generationRunRepo) Create(dbc dbctx.Context, run *types.GenerationRun) (*types.GenerationRun, error) {
	if run == nil {
		return nil, errors.New("nil generation run")
	}
	if err := dbc.Conn(r.db).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *generationRunRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.GenerationRun, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var run types.GenerationRun
	err := dbc.Conn(r.db).Where("id = ?", id).Limit(1).Find(&run).Error
	if err != nil {
		return nil, err
	}
	if run.ID == uuid.Nil {
		return nil, nil
	}
	return &run, nil
}

func (r *generationRunRepo) ListByProject(dbc dbctx.Context, projectID string, limit int) ([]*types.GenerationRun, error) {
	var out []*types.GenerationRun
	if projectID == "" {
		return out, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	err := dbc.Conn(r.db).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *generationRunRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return dbc.Conn(r.db).
		Model(&types.GenerationRun{}).
		Where("id = ?", id).
		Updates(updates).Error
}
