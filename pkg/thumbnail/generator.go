package thumbnail

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
)

const (
	maxFontSize        = 200.0 // starting size before fitting
	labelGrowth        = 1.5   // label box relative to the fitted text
	labelMaxWidthRatio = 0.8   // label box cap relative to the panel width

	// DefaultScale renders thumbnails at 2x so they stay sharp in the 2x sinks.
	DefaultScale = 2.0
)

// Options customizes a generated thumbnail. Nil fields use the defaults:
// the fitted regular font, black text and a white panel.
type Options struct {
	Font       *fonts.Font
	TextColor  *color.NRGBA
	Background []color.NRGBA
}

// Layout is the computed placement of the initials inside the panel.
// All rectangles are in points relative to the panel origin.
type Layout struct {
	Initials string
	Panel    geom.Rect
	Label    geom.Rect
	Font     fonts.Font
}

// LabelLayout computes where the initials go inside frame.
//
// The text is fitted at up to 200pt so that a label 1.5 times its natural
// size still fits in 80% of the panel width. The label box is that 1.5x size,
// capped at 80% of the width and the full height, and centered in the panel.
// A user font keeps its family; a user font with a positive size replaces
// the fitted size.
func LabelLayout(initials string, frame geom.Rect, userFont *fonts.Font) (Layout, error) {
	if frame.Empty() {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "thumbnail frame must have a positive size, got %v", frame)
	}

	base := fonts.Font{Family: fonts.FamilyRegular}
	if userFont != nil {
		base.Family = userFont.Family
	}

	maxW := frame.W * labelMaxWidthRatio / labelGrowth
	maxH := frame.H / labelGrowth
	size, err := fonts.FitSize(base, initials, maxW, maxH, maxFontSize)
	if err != nil {
		return Layout{}, err
	}
	natural, err := fonts.Measure(base.WithSize(size), initials)
	if err != nil {
		return Layout{}, err
	}

	panel := frame.Bounds()
	label := geom.Rect{
		W: min(natural.W*labelGrowth, panel.W*labelMaxWidthRatio),
		H: min(natural.H*labelGrowth, panel.H),
	}.CenteredIn(panel)

	f := base.WithSize(size)
	if userFont != nil && userFont.Size > 0 {
		f.Size = userFont.Size
	}

	return Layout{Initials: initials, Panel: panel, Label: label, Font: f}, nil
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithScale sets the pixel density of generated bitmaps (default 2.0).
func WithScale(s float64) GeneratorOption {
	return func(g *Generator) {
		if s > 0 {
			g.scale = s
		}
	}
}

// Generator renders initials thumbnails.
type Generator struct {
	scale float64
}

// NewGenerator creates a generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{scale: DefaultScale}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Scale returns the generator's pixel density.
func (g *Generator) Scale() float64 { return g.scale }

// Thumbnail is a rendered bitmap together with the layout it was drawn from.
type Thumbnail struct {
	Image  image.Image
	Layout Layout
}

// Generate renders the initials of name centered over a panel the size of
// frame and returns the flattened bitmap with size frame*scale pixels.
//
// It fails with INVALID_INPUT for an empty name or an empty frame.
func (g *Generator) Generate(name string, frame geom.Rect, opts Options) (image.Image, error) {
	t, err := g.Render(name, frame, opts)
	if err != nil {
		return nil, err
	}
	return t.Image, nil
}

// Render is Generate but also returns the computed layout, including the
// initials that were drawn.
func (g *Generator) Render(name string, frame geom.Rect, opts Options) (Thumbnail, error) {
	initials, err := Initials(name)
	if err != nil {
		return Thumbnail{}, err
	}
	l, err := LabelLayout(initials, frame, opts.Font)
	if err != nil {
		return Thumbnail{}, err
	}

	background := paint.Solid(paint.White)
	if len(opts.Background) > 0 {
		if background, err = paint.NewFill(opts.Background...); err != nil {
			return Thumbnail{}, err
		}
	}
	textColor := paint.Black
	if opts.TextColor != nil {
		textColor = *opts.TextColor
	}

	w := int(math.Ceil(frame.W * g.scale))
	h := int(math.Ceil(frame.H * g.scale))
	dc := gg.NewContext(w, h)

	dc.SetFillStyle(background.Pattern(0, 0, float64(w), float64(h)))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	face, err := fonts.Face(l.Font, g.scale)
	if err != nil {
		return Thumbnail{}, err
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(initials, l.Label.MidX()*g.scale, fonts.Baseline(face, l.Label.MidY()*g.scale), 0.5, 0)

	return Thumbnail{Image: dc.Image(), Layout: l}, nil
}
