package sink

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// DefaultScale renders at 2x resolution.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the tree and encodes it as PNG.
func RenderPNG(root *view.Layer, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	img, err := RenderImage(root, r.scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderImage rasterizes the tree into a bitmap of root's size times scale.
// The root layer is drawn at the origin regardless of its frame position.
// A scale of zero or less uses DefaultScale.
func RenderImage(root *view.Layer, scale float64) (*image.RGBA, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	w := int(math.Ceil(root.Frame.W * scale))
	h := int(math.Ceil(root.Frame.H * scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layer %s has no area", root.Name)
	}

	r := rasterizer{dc: gg.NewContext(w, h), scale: scale}
	if err := r.draw(root, -root.Frame.X, -root.Frame.Y); err != nil {
		return nil, err
	}
	return r.dc.Image().(*image.RGBA), nil
}

// rasterizer tracks the clip itself because gg's Pop keeps the current mask.
type rasterizer struct {
	dc    *gg.Context
	scale float64
	mask  *image.Alpha // active clip, nil when unclipped
}

// draw paints l whose parent origin is at (ox, oy) in points.
// A clip applies to l's own content and children only; the border and every
// later sibling are drawn under the parent's clip.
func (r *rasterizer) draw(l *view.Layer, ox, oy float64) error {
	x, y := ox+l.Frame.X, oy+l.Frame.Y
	px, py := x*r.scale, y*r.scale
	pw, ph := l.Frame.W*r.scale, l.Frame.H*r.scale
	radius := l.CornerRadius * r.scale

	dc := r.dc
	dc.Push()
	defer dc.Pop()

	if l.Background != nil {
		dc.SetFillStyle(l.Background.Pattern(px, py, pw, ph))
		dc.DrawRoundedRectangle(px, py, pw, ph, radius)
		dc.Fill()
	}

	parent := r.mask
	if l.ClipsToBounds {
		if err := r.clip(px, py, pw, ph, radius); err != nil {
			return err
		}
	}

	if l.Image != nil {
		r.drawImage(l, px, py, pw, ph)
	}
	if l.Text != nil && l.Text.Value != "" {
		if err := r.drawText(l, px, py, pw, ph); err != nil {
			return err
		}
	}

	for _, c := range l.Children() {
		if err := r.draw(c, x, y); err != nil {
			r.setMask(parent)
			return err
		}
	}
	r.setMask(parent)

	if l.HasBorder() {
		bw := l.BorderWidth * r.scale
		inset := bw / 2
		dc.SetColor(l.BorderColor)
		dc.SetLineWidth(bw)
		dc.DrawRoundedRectangle(px+inset, py+inset, pw-bw, ph-bw, max(0, radius-inset))
		dc.Stroke()
	}
	return nil
}

// clip narrows the active clip to the rounded rectangle.
func (r *rasterizer) clip(px, py, pw, ph, radius float64) error {
	shape := gg.NewContext(r.dc.Width(), r.dc.Height())
	shape.SetRGBA(0, 0, 0, 1)
	shape.DrawRoundedRectangle(px, py, pw, ph, radius)
	shape.Fill()

	mask := shape.AsMask()
	if r.mask != nil {
		for i, a := range r.mask.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(a) / 255)
		}
	}
	if err := r.dc.SetMask(mask); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "clip layer")
	}
	r.mask = mask
	return nil
}

// setMask makes mask the active clip again.
func (r *rasterizer) setMask(mask *image.Alpha) {
	r.mask = mask
	if mask == nil {
		r.dc.ResetClip()
		return
	}
	_ = r.dc.SetMask(mask) // masks are always built at the context size
}

func (r *rasterizer) drawImage(l *view.Layer, px, py, pw, ph float64) {
	w, h := int(math.Round(pw)), int(math.Round(ph))
	if w <= 0 || h <= 0 || l.Image.Bounds().Empty() {
		return
	}

	var fitted *image.NRGBA
	switch l.ContentMode {
	case view.ContentAspectFit:
		fitted = imaging.Fit(l.Image, w, h, imaging.Lanczos)
	default:
		fitted = imaging.Fill(l.Image, w, h, imaging.Center, imaging.Lanczos)
	}

	b := fitted.Bounds()
	dx := int(math.Round(px)) + (w-b.Dx())/2
	dy := int(math.Round(py)) + (h-b.Dy())/2
	r.dc.DrawImage(fitted, dx, dy)
}

func (r *rasterizer) drawText(l *view.Layer, px, py, pw, ph float64) error {
	f, err := resolveFont(l)
	if err != nil {
		return err
	}
	face, err := fonts.Face(f, r.scale)
	if err != nil {
		return err
	}
	defer face.Close()

	r.dc.SetFontFace(face)
	r.dc.SetColor(l.Text.Color)
	r.dc.DrawStringAnchored(l.Text.Value, px+pw/2, fonts.Baseline(face, py+ph/2), 0.5, 0)
	return nil
}
