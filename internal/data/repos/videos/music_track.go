package videos

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type MusicTrackRepo interface {
	// GetByRef resolves a track by UUID or slug. Inactive tracks are not returned.
	GetByRef(dbc dbctx.Context, ref string) (*types.MusicTrack, error)
	ListActive(dbc dbctx.Context) ([]*types.MusicTrack, error)
	Upsert(dbc dbctx.Context, track *types.MusicTrack) error
}

type musicTrackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMusicTrackRepo(db *gorm.DB, baseLog *logger.Logger) MusicTrackRepo {
	return &musicTrackRepo{
		db:  db,
		log: baseLog.With("repo", "MusicTrackRepo"),
	}
}

func (r *musicTrackRepo) GetByRef(dbc dbctx.Context, ref string) (*types.MusicTrack, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	q := dbc.Conn(r.db).Where("active = ?", true)
	if id, err := uuid.Parse(ref); err == nil {
		q = q.Where("id = ?", id)
	} else {
		q = q.Where("slug = ?", strings.ToLower(ref))
	}
	var track types.MusicTrack
	if err := q.Limit(1).Find(&track).Error; err != nil {
		return nil, err
	}
	if track.ID == uuid.Nil {
		return nil, nil
	}
	return &track, nil
}

func (r *musicTrackRepo) ListActive(dbc dbctx.Context) ([]*types.MusicTrack, error) {
	var out []*types.MusicTrack
	if err := dbc.Conn(r.db).Where("active = ?", true).Order("title ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *musicTrackRepo) Upsert(dbc dbctx.Context, track *types.MusicTrack) error {
	if track == nil {
		return nil
	}
	track.Slug = strings.ToLower(strings.TrimSpace(track.Slug))
	return dbc.Conn(r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "storage_key", "default_volume", "active", "updated_at"}),
	}).Create(track).Error
}
