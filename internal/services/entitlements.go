package services

import (
	"context"
	"strings"

	"github.com/yungbote/kinetic-backend/internal/data/repos"
	"github.com/yungbote/kinetic-backend/internal/platform/dbctx"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

type EntitlementService interface {
	// Watermark reports whether renders for userID carry a watermark. Unknown
	// users and lookup failures get one.
	Watermark(ctx context.Context, userID string) bool
}

type entitlementService struct {
	log   *logger.Logger
	plans repos.UserPlanRepo
}

func NewEntitlementService(log *logger.Logger, plans repos.UserPlanRepo) EntitlementService {
	return &entitlementService{log: log.With("service", "EntitlementService"), plans: plans}
}

func (s *entitlementService) Watermark(ctx context.Context, userID string) bool {
	userID = strings.TrimSpace(userID)
	if userID == "" || s.plans == nil {
		return true
	}
	plan, err := s.plans.GetByUserID(dbctx.From(ctx), userID)
	if err != nil {
		s.log.Warn("Plan lookup failed, defaulting to watermark", "user_id", userID, "error", err)
		return true
	}
	return plan.Watermarked()
}
