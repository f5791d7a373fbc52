package domain

import (
	"github.com/yungbote/kinetic-backend/internal/domain/billing"
	"github.com/yungbote/kinetic-backend/internal/domain/videos"
)

const (
	ModeGraphicMotion = videos.ModeGraphicMotion
	ModeCaptions      = videos.ModeCaptions

	DispatchStatusQueued  = videos.DispatchStatusQueued
	DispatchStatusSkipped = videos.DispatchStatusSkipped
	DispatchStatusFailed  = videos.DispatchStatusFailed

	TierFree = billing.TierFree
	TierPro  = billing.TierPro
	TierTeam = billing.TierTeam
)

type GenerationRun = videos.GenerationRun
type MusicTrack = videos.MusicTrack
type UserPlan = billing.UserPlan
