package storyboard

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
)

func TestRender_GridDimensions(t *testing.T) {
	tl, err := motiongraph.Build([]motiongraph.RawScene{
		{Text: "Meet the studio", SceneRole: motiongraph.RoleIntro, Label: "New", SubHeadline: "Motion in minutes"},
		{Text: "Editing takes hours", SceneRole: motiongraph.RoleProblem},
		{Text: "Templates that move", SceneRole: motiongraph.RoleFeature, AuthorLine: "Team Kinetic"},
		{Text: "one two three four five six seven eight nine", SceneRole: motiongraph.RoleFeature, SupportingText: "long form"},
		{Text: "Go", SceneRole: motiongraph.RoleCTA, HeadlineEmphasis: motiongraph.HeadlineHigh},
	}, "", motiongraph.Options{HighlightWords: []string{"studio"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	out, err := r.Render(context.Background(), tl, Options{CellWidth: 108, Columns: 3})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	cellH := 108 * 1920 / 1080
	wantW := 3*108 + 4*gutter
	wantH := 2*(cellH+captionHeight) + 3*gutter
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("size: want=%dx%d got=%dx%d", wantW, wantH, b.Dx(), b.Dy())
	}
}

func TestRender_RejectsEmptyTimeline(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := r.Render(context.Background(), &motiongraph.Timeline{}, Options{}); err == nil {
		t.Fatalf("expected error")
	}
}
