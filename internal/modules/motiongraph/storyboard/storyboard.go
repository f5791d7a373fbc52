package storyboard

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"runtime"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
)

const (
	defaultCellWidth = 270
	defaultColumns   = 4
	gutter           = 16
	captionHeight    = 34
	sheetBackground  = "#1B1B1F"
	captionColor     = "#D0D0D8"
)

type Options struct {
	CellWidth int
	Columns   int
}

// Renderer draws a contact sheet with one card per scene. It holds parsed
// fonts only; faces are created per cell because they are not safe for
// concurrent use.
type Renderer struct {
	regular *truetype.Font
	bold    *truetype.Font
}

func NewRenderer() (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

// Render returns the storyboard as PNG bytes.
func (r *Renderer) Render(ctx context.Context, tl *motiongraph.Timeline, opts Options) ([]byte, error) {
	if tl == nil || len(tl.Scenes) == 0 {
		return nil, fmt.Errorf("storyboard: empty timeline")
	}
	cellW := opts.CellWidth
	if cellW <= 0 {
		cellW = defaultCellWidth
	}
	cellH := cellW * tl.Height / tl.Width
	cols := opts.Columns
	if cols <= 0 {
		cols = defaultColumns
	}
	if cols > len(tl.Scenes) {
		cols = len(tl.Scenes)
	}
	rows := (len(tl.Scenes) + cols - 1) / cols

	cells := make([]image.Image, len(tl.Scenes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range tl.Scenes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells[i] = r.drawCell(tl, tl.Scenes[i], cellW, cellH)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sheetW := cols*cellW + (cols+1)*gutter
	sheetH := rows*(cellH+captionHeight) + (rows+1)*gutter
	dc := gg.NewContext(sheetW, sheetH)
	dc.SetHexColor(sheetBackground)
	dc.Clear()

	caption := r.face(r.regular, 12)
	defer caption.Close()
	dc.SetFontFace(caption)
	for i, img := range cells {
		col, row := i%cols, i/cols
		x := gutter + col*(cellW+gutter)
		y := gutter + row*(cellH+captionHeight+gutter)
		dc.DrawImage(img, x, y)
		dc.SetHexColor(captionColor)
		dc.DrawStringAnchored(captionFor(tl.Scenes[i]), float64(x), float64(y+cellH)+captionHeight/2, 0, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func captionFor(s motiongraph.GraphicMotionScene) string {
	return fmt.Sprintf("#%d %s  %d-%df  %s  %s",
		s.Index+1,
		s.SceneRole,
		s.StartFrame,
		s.StartFrame+s.Rhythm.TotalFrames,
		s.TransitionIn.TransitionType,
		s.Motion.MotionPreset,
	)
}

func (r *Renderer) drawCell(tl *motiongraph.Timeline, s motiongraph.GraphicMotionScene, w, h int) image.Image {
	style := tl.Style
	fw, fh := float64(w), float64(h)
	dc := gg.NewContext(w, h)
	dc.SetHexColor(style.Background)
	dc.Clear()

	headSize := fw * 0.085 * style.TypographyScale
	switch s.Template {
	case motiongraph.TemplateImpactFullBleed:
		headSize *= 1.5
	case motiongraph.TemplateQuoteCard:
		headSize *= 0.8
	}
	if s.Layout == motiongraph.LayoutImpactSingleWord {
		headSize *= 1.3
	}
	if s.HeadlineEmphasis == motiongraph.HeadlineHigh {
		headSize *= 1.1
	}
	margin := fw * 0.08
	textW := fw - 2*margin

	// Accent element per layout.
	dc.SetHexColor(style.AccentColor)
	switch s.Layout {
	case motiongraph.LayoutMinimalLeft:
		dc.DrawRectangle(margin, fh*0.35, fw*0.012, fh*0.3)
	case motiongraph.LayoutSplitStack:
		dc.DrawRectangle(margin, fh*0.5, textW, 2)
	case motiongraph.LayoutGraphicAccent:
		dc.DrawCircle(fw*0.82, fh*0.18, fw*0.09)
	default:
		dc.DrawRectangle(fw/2-fw*0.08, fh*0.62, fw*0.16, 3)
	}
	dc.Fill()

	small := r.face(r.regular, headSize*0.45)
	defer small.Close()
	head := r.face(r.bold, headSize)
	defer head.Close()

	if s.Label != "" {
		dc.SetFontFace(small)
		dc.SetHexColor(style.TextColors.Muted)
		dc.DrawStringAnchored(strings.ToUpper(s.Label), margin, fh*0.12, 0, 0.5)
	}

	align, ax, x := gg.AlignCenter, 0.5, fw/2
	if s.Layout == motiongraph.LayoutMinimalLeft {
		align, ax, x = gg.AlignLeft, 0, margin+fw*0.04
		textW -= fw * 0.04
	}
	headY := fh * 0.45
	if s.Layout == motiongraph.LayoutSplitStack {
		headY = fh * 0.3
	}

	dc.SetFontFace(head)
	text := strings.TrimSpace(s.Text)
	if s.Template == motiongraph.TemplateQuoteCard && text != "" {
		text = "“" + text + "”"
	}
	dc.SetHexColor(style.TextColors.Primary)
	dc.DrawStringWrapped(text, x, headY, ax, 0.5, textW, 1.2, align)

	if len(s.HighlightWordIndices) > 0 {
		hl := make([]string, 0, len(s.HighlightWordIndices))
		for _, idx := range s.HighlightWordIndices {
			hl = append(hl, s.Words[idx])
		}
		dc.SetFontFace(small)
		dc.SetHexColor(style.AccentColor)
		dc.DrawStringAnchored(strings.Join(hl, " "), x, headY+headSize*1.6, ax, 0.5)
	}

	dc.SetFontFace(small)
	if s.SubHeadline != "" {
		dc.SetHexColor(style.TextColors.Secondary)
		dc.DrawStringWrapped(s.SubHeadline, x, fh*0.7, ax, 0.5, textW, 1.2, align)
	}
	if s.SupportingText != "" {
		dc.SetHexColor(style.TextColors.Muted)
		dc.DrawStringWrapped(s.SupportingText, x, fh*0.8, ax, 0.5, textW, 1.2, align)
	}
	if s.AuthorLine != "" {
		dc.SetHexColor(style.TextColors.Muted)
		dc.DrawStringAnchored(s.AuthorLine, fw-margin, fh*0.92, 1, 0.5)
	}
	return dc.Image()
}
