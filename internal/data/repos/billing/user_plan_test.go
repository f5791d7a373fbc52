package billing

import (
	"context"
	"testing"

	"github.com/yungbote/kinetic-backend/internal/data/repos/testutil"
	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
)

func TestUserPlanRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewUserPlanRepo(db, testutil.Logger(t))

	if plan, err := repo.GetByUserID(dbc, "nobody"); err != nil || plan != nil {
		t.Fatalf("GetByUserID missing: got=%v err=%v", plan, err)
	}
	if err := repo.Upsert(dbc, &types.UserPlan{UserID: "u-1", Tier: types.TierFree, Status: "active"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(dbc, &types.UserPlan{UserID: "u-1", Tier: types.TierPro, Status: "active"}); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	plan, err := repo.GetByUserID(dbc, "u-1")
	if err != nil || plan == nil {
		t.Fatalf("GetByUserID: got=%v err=%v", plan, err)
	}
	if plan.Tier != types.TierPro || plan.Watermarked() {
		t.Fatalf("plan: want pro without watermark got=%+v", plan)
	}
}
