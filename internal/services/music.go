package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/kinetic-backend/internal/data/repos"
	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/gcp"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

var (
	ErrMusicDisabled = errors.New("music lookup disabled")
	ErrMusicNotFound = errors.New("music track not found")
)

// Music is the background track reference carried in the render envelope.
type Music struct {
	TrackID string  `json:"trackId"`
	URI     string  `json:"uri"`
	Volume  float64 `json:"volume"`
}

type MusicResolver interface {
	// Resolve maps a catalog reference (UUID or slug) to a verified object URI.
	// An empty ref returns (nil, nil).
	Resolve(ctx context.Context, ref string, volume *float64) (*Music, error)
	// Catalog lists the active tracks.
	Catalog(ctx context.Context) ([]*types.MusicTrack, error)
}

type musicResolver struct {
	log    *logger.Logger
	tracks repos.MusicTrackRepo
	bucket gcp.MusicBucket
}

func NewMusicResolver(log *logger.Logger, tracks repos.MusicTrackRepo, bucket gcp.MusicBucket) MusicResolver {
	return &musicResolver{log: log.With("service", "MusicResolver"), tracks: tracks, bucket: bucket}
}

func (r *musicResolver) Resolve(ctx context.Context, ref string, volume *float64) (*Music, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	if r.tracks == nil || r.bucket == nil {
		return nil, ErrMusicDisabled
	}
	track, err := r.tracks.GetByRef(dbctx.From(ctx), ref)
	if err != nil {
		return nil, fmt.Errorf("music track lookup: %w", err)
	}
	if track == nil {
		return nil, fmt.Errorf("%w: %s", ErrMusicNotFound, ref)
	}
	if _, err := r.bucket.ObjectAttrs(ctx, track.StorageKey); err != nil {
		return nil, err
	}

	vol := track.DefaultVolume
	if volume != nil {
		vol = *volume
	}
	return &Music{
		TrackID: track.ID.String(),
		URI:     r.bucket.URI(track.StorageKey),
		Volume:  clampVolume(vol),
	}, nil
}

func (r *musicResolver) Catalog(ctx context.Context) ([]*types.MusicTrack, error) {
	if r.tracks == nil {
		return []*types.MusicTrack{}, nil
	}
	tracks, err := r.tracks.ListActive(dbctx.From(ctx))
	if err != nil {
		return nil, fmt.Errorf("list music tracks: %w", err)
	}
	return tracks, nil
}

func clampVolume(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
