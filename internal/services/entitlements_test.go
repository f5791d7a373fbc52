package services

import (
	"context"
	"errors"
	"testing"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type fakePlans struct {
	plans map[string]*types.UserPlan
	err   error
}

func (f fakePlans) GetByUserID(_ dbctx.Context, userID string) (*types.UserPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plans[userID], nil
}

func (f fakePlans) Upsert(dbctx.Context, *types.UserPlan) error { return nil }

func TestEntitlements_Watermark(t *testing.T) {
	plans := fakePlans{plans: map[string]*types.UserPlan{
		"free": {UserID: "free", Tier: types.TierFree, Status: "active"},
		"pro":  {UserID: "pro", Tier: types.TierPro, Status: "active"},
	}}
	svc := NewEntitlementService(logger.Nop(), plans)
	cases := map[string]bool{"": true, "unknown": true, "free": true, "pro": false}
	for user, want := range cases {
		if got := svc.Watermark(context.Background(), user); got != want {
			t.Fatalf("user %q: want=%v got=%v", user, want, got)
		}
	}

	failing := NewEntitlementService(logger.Nop(), fakePlans{err: errors.New("db down")})
	if !failing.Watermark(context.Background(), "pro") {
		t.Fatalf("lookup failure should default to watermark")
	}
}
