package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidRequest = errors.New("invalid request")

// GraphicMotionRequest is the inbound option bag for a kinetic-typography
// timeline. Text may be empty: the scene source yields a placeholder scene.
type GraphicMotionRequest struct {
	ProjectID             string   `json:"projectId" validate:"omitempty,max=128"`
	Text                  string   `json:"text" validate:"max=20000"`
	Format                string   `json:"format" validate:"omitempty,oneof=reels tiktok horizontal square"`
	TemplateStyle         string   `json:"templateStyle" validate:"omitempty,max=64"`
	FontFamily            string   `json:"fontFamily" validate:"omitempty,max=128"`
	HighlightWords        []string `json:"highlightWords" validate:"omitempty,max=50,dive,max=64"`
	TargetSecondsPerScene *float64 `json:"targetSecondsPerScene" validate:"omitempty,gt=0,lte=30"`
	MinHoldSeconds        *float64 `json:"minHoldSeconds" validate:"omitempty,gte=0,lte=10"`
	FPS                   int      `json:"fps" validate:"omitempty,oneof=24 25 30 50 60"`
	Seed                  *int64   `json:"seed"`
	Tone                  string   `json:"tone" validate:"omitempty,max=64"`
	MusicTrackID          string   `json:"musicTrackId" validate:"omitempty,max=128"`
	MusicVolume           *float64 `json:"musicVolume" validate:"omitempty,gte=0,lte=1"`
}

// CaptionsRequest drives the legacy reveal-caption mode.
type CaptionsRequest struct {
	ProjectID       string   `json:"projectId" validate:"omitempty,max=128"`
	Text            string   `json:"text" validate:"required,max=20000"`
	FPS             int      `json:"fps" validate:"omitempty,oneof=24 25 30 50 60"`
	Intensity       *float64 `json:"intensity" validate:"omitempty,gte=0,lte=1"`
	AnimationPreset string   `json:"animationPreset" validate:"omitempty,max=64"`
	HighlightWords  []string `json:"highlightWords" validate:"omitempty,max=50,dive,max=64"`
	MusicTrackID    string   `json:"musicTrackId" validate:"omitempty,max=128"`
	MusicVolume     *float64 `json:"musicVolume" validate:"omitempty,gte=0,lte=1"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validateRequest reports the first failing field as ErrInvalidRequest.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %s", ErrInvalidRequest, lowerFirst(fe.Field()), fieldRule(fe))
	}
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

func fieldRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
