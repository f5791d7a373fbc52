package videos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/kinetic-backend/internal/data/repos/testutil"
	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
)

func TestGenerationRunRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewGenerationRunRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	projectID := "proj-" + uuid.NewString()
	older := &types.GenerationRun{
		ProjectID:   projectID,
		UserID:      "u-1",
		Mode:        types.ModeGraphicMotion,
		SourceKind:  "fallback",
		SceneCount:  3,
		TotalFrames: 360,
		FPS:         30,
		Timeline:    datatypes.JSON([]byte(`{"scenes":[]}`)),
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	if _, err := repo.Create(dbc, older); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if older.ID == uuid.Nil {
		t.Fatalf("Create: id not assigned")
	}
	newer := &types.GenerationRun{ProjectID: projectID, Mode: types.ModeCaptions, Timeline: datatypes.JSON([]byte(`[]`))}
	if _, err := repo.Create(dbc, newer); err != nil {
		t.Fatalf("Create newer: %v", err)
	}

	got, err := repo.GetByID(dbc, older.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got.TotalFrames != 360 || got.SourceKind != "fallback" {
		t.Fatalf("GetByID: unexpected row %+v", got)
	}
	if missing, err := repo.GetByID(dbc, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID missing: got=%v err=%v", missing, err)
	}

	if err := repo.UpdateFields(dbc, older.ID, map[string]interface{}{
		"dispatch_status": types.DispatchStatusQueued,
		"dispatch_mode":   "redis",
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	list, err := repo.ListByProject(dbc, projectID, 10)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByProject: want=2 got=%d", len(list))
	}
	if list[0].ID != newer.ID {
		t.Fatalf("ListByProject: want newest first")
	}
	if list[1].DispatchStatus != types.DispatchStatusQueued {
		t.Fatalf("UpdateFields not applied: %+v", list[1])
	}
}
