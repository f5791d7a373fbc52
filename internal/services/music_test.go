package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/gcp"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type fakeTracks struct {
	track *types.MusicTrack
	err   error
}

func (f fakeTracks) GetByRef(dbctx.Context, string) (*types.MusicTrack, error) { return f.track, f.err }
func (f fakeTracks) ListActive(dbctx.Context) ([]*types.MusicTrack, error) { return nil, nil }
func (f fakeTracks) Upsert(dbctx.Context, *types.MusicTrack) error { return nil }

type fakeBucket struct {
	missing bool
}

func (b fakeBucket) ObjectAttrs(_ context.Context, key string) (*gcp.ObjectAttrs, error) {
	if b.missing {
		return nil, fmt.Errorf("%w: %s", gcp.ErrObjectNotFound, key)
	}
	return &gcp.ObjectAttrs{Size: 1}, nil
}
func (b fakeBucket) URI(key string) string { return gcp.ObjectURI("music", key) }
func (b fakeBucket) Close() error { return nil }

func TestMusicResolver(t *testing.T) {
	track := &types.MusicTrack{ID: uuid.New(), Slug: "lofi", StorageKey: "tracks/lofi.mp3", DefaultVolume: 0.35}

	r := NewMusicResolver(logger.Nop(), fakeTracks{track: track}, fakeBucket{})
	m, err := r.Resolve(context.Background(), "lofi", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m.URI != "gs://music/tracks/lofi.mp3" || m.Volume != 0.35 || m.TrackID != track.ID.String() {
		t.Fatalf("music: %+v", m)
	}
	loud := 3.0
	if m, _ := r.Resolve(context.Background(), "lofi", &loud); m.Volume != 1 {
		t.Fatalf("volume clamp: got=%v", m.Volume)
	}

	if m, err := r.Resolve(context.Background(), "  ", nil); m != nil || err != nil {
		t.Fatalf("empty ref: m=%v err=%v", m, err)
	}
	if _, err := NewMusicResolver(logger.Nop(), fakeTracks{}, fakeBucket{}).Resolve(context.Background(), "x", nil); !errors.Is(err, ErrMusicNotFound) {
		t.Fatalf("unknown track: got=%v", err)
	}
	if _, err := NewMusicResolver(logger.Nop(), fakeTracks{track: track}, fakeBucket{missing: true}).Resolve(context.Background(), "lofi", nil); !errors.Is(err, gcp.ErrObjectNotFound) {
		t.Fatalf("missing object: got=%v", err)
	}
	if _, err := NewMusicResolver(logger.Nop(), nil, nil).Resolve(context.Background(), "lofi", nil); !errors.Is(err, ErrMusicDisabled) {
		t.Fatalf("disabled: got=%v", err)
	}
}
