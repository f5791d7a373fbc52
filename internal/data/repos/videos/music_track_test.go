package videos

import (
	"context"
	"testing"

	"github.com/yungbote/kinetic-backend/internal/data/repos/testutil"
	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
)

func TestMusicTrackRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewMusicTrackRepo(db, testutil.Logger(t))

	track := &types.MusicTrack{Slug: "Upbeat-Pop", Title: "Upbeat Pop", StorageKey: "tracks/upbeat.mp3", DefaultVolume: 0.25, Active: true}
	if err := repo.Upsert(dbc, track); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	bySlug, err := repo.GetByRef(dbc, "upbeat-pop")
	if err != nil || bySlug == nil {
		t.Fatalf("GetByRef slug: got=%v err=%v", bySlug, err)
	}
	byID, err := repo.GetByRef(dbc, bySlug.ID.String())
	if err != nil || byID == nil || byID.StorageKey != "tracks/upbeat.mp3" {
		t.Fatalf("GetByRef id: got=%v err=%v", byID, err)
	}

	if err := repo.Upsert(dbc, &types.MusicTrack{Slug: "upbeat-pop", Title: "Upbeat Pop v2", StorageKey: "tracks/upbeat-v2.mp3", DefaultVolume: 0.4, Active: true}); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	updated, _ := repo.GetByRef(dbc, "upbeat-pop")
	if updated == nil || updated.StorageKey != "tracks/upbeat-v2.mp3" {
		t.Fatalf("Upsert did not update: %+v", updated)
	}

	if none, err := repo.GetByRef(dbc, "missing"); err != nil || none != nil {
		t.Fatalf("GetByRef missing: got=%v err=%v", none, err)
	}
	list, err := repo.ListActive(dbc)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListActive: got=%d err=%v", len(list), err)
	}
}
