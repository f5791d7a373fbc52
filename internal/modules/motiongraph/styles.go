package motiongraph

import "strings"

const DefaultTemplateStyle = "bold-dark"

var templateStyles = map[string]StyleConfig{
	"bold-dark": {
		Background:              "#0B0B0F",
		TypographyScale:         1.0,
		MotionIntensityBaseline: 0.7,
		AccentColor:             "#FF4D4D",
		TextColors:              TextColors{Primary: "#FFFFFF", Secondary: "#C9C9D1", Muted: "#6E6E7A"},
	},
	"minimal-light": {
		Background:              "#F7F5F0",
		TypographyScale:         0.9,
		MotionIntensityBaseline: 0.4,
		AccentColor:             "#1F3BFF",
		TextColors:              TextColors{Primary: "#111111", Secondary: "#3D3D3D", Muted: "#8A8A8A"},
	},
	"neon-pop": {
		Background:              "#120428",
		TypographyScale:         1.1,
		MotionIntensityBaseline: 0.9,
		AccentColor:             "#39FF14",
		TextColors:              TextColors{Primary: "#FDFDFD", Secondary: "#E0B3FF", Muted: "#7A5C99"},
	},
	"editorial": {
		Background:              "#FFFFFF",
		TypographyScale:         0.95,
		MotionIntensityBaseline: 0.5,
		AccentColor:             "#C2410C",
		TextColors:              TextColors{Primary: "#1A1A1A", Secondary: "#4B4B4B", Muted: "#9B9B9B"},
	},
}

// TemplateStyles lists the accepted style names.
func TemplateStyles() []string {
	return []string{"bold-dark", "minimal-light", "neon-pop", "editorial"}
}

// ResolveStyle returns the canonical name and config; unknown names resolve to
// DefaultTemplateStyle.
func ResolveStyle(name string) (string, StyleConfig) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cfg, ok := templateStyles[key]; ok {
		return key, cfg
	}
	return DefaultTemplateStyle, templateStyles[DefaultTemplateStyle]
}

// CanvasFor maps an output format to pixel dimensions.
func CanvasFor(format string) (width, height int) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "horizontal":
		return 1920, 1080
	case "square":
		return 1080, 1080
	default:
		return 1080, 1920
	}
}
