package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	prefix string
	seq    int
}

// WithIDPrefix namespaces every generated element ID, so several trees can
// share one document.
func WithIDPrefix(p string) SVGOption { return func(r *svgRenderer) { r.prefix = p } }

// RenderSVG renders the tree as a standalone SVG document sized to root.
func RenderSVG(root *view.Layer, opts ...SVGOption) ([]byte, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		root.Frame.W, root.Frame.H, root.Frame.W, root.Frame.H)

	if err := r.renderLayer(&buf, root, -root.Frame.X, -root.Frame.Y, 1); err != nil {
		return nil, err
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{prefix: "dp"}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) id(l *view.Layer, suffix string) string {
	name := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '-'
		}
	}, l.Name)
	return fmt.Sprintf("%s-%s-%d-%s", r.prefix, name, r.seq, suffix)
}

// renderLayer writes l as a group translated by its frame plus the offset.
func (r *svgRenderer) renderLayer(buf *bytes.Buffer, l *view.Layer, dx, dy float64, depth int) error {
	r.seq++
	pad := strings.Repeat("  ", depth)
	w, h := l.Frame.W, l.Frame.H
	rx := l.CornerRadius

	fmt.Fprintf(buf, `%s<g id="%s" transform="translate(%.2f,%.2f)">`+"\n",
		pad, r.id(l, "layer"), l.Frame.X+dx, l.Frame.Y+dy)

	if l.Background != nil {
		fill := r.renderFill(buf, l, *l.Background, pad)
		fmt.Fprintf(buf, `%s  <rect width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" %s/>`+"\n",
			pad, w, h, rx, rx, fill)
	}

	clipped := l.ClipsToBounds
	if clipped {
		clipID := r.id(l, "clip")
		fmt.Fprintf(buf, `%s  <clipPath id="%s"><rect width="%.2f" height="%.2f" rx="%.2f" ry="%.2f"/></clipPath>`+"\n",
			pad, clipID, w, h, rx, rx)
		fmt.Fprintf(buf, `%s  <g clip-path="url(#%s)">`+"\n", pad, clipID)
	}

	if l.Image != nil && !l.Image.Bounds().Empty() {
		if err := renderImage(buf, l, pad); err != nil {
			return err
		}
	}
	if l.Text != nil && l.Text.Value != "" {
		if err := renderText(buf, l, pad); err != nil {
			return err
		}
	}
	for _, c := range l.Children() {
		if err := r.renderLayer(buf, c, 0, 0, depth+1); err != nil {
			return err
		}
	}

	if clipped {
		fmt.Fprintf(buf, "%s  </g>\n", pad)
	}

	if l.HasBorder() {
		bw := l.BorderWidth
		fmt.Fprintf(buf, `%s  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="none" %s stroke-width="%.2f"/>`+"\n",
			pad, bw/2, bw/2, max(0, w-bw), max(0, h-bw), max(0, rx-bw/2), max(0, rx-bw/2), paintAttr("stroke", l.BorderColor), bw)
	}

	fmt.Fprintf(buf, "%s</g>\n", pad)
	return nil
}

// renderFill writes any gradient definition the fill needs and returns the
// fill attributes for the shape using it.
func (r *svgRenderer) renderFill(buf *bytes.Buffer, l *view.Layer, f paint.Fill, pad string) string {
	if f.Kind() == paint.KindSolid {
		return paintAttr("fill", f.Color())
	}
	gradID := r.id(l, "bg")
	fmt.Fprintf(buf, `%s  <defs><linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`, pad, gradID)
	for _, s := range f.Stops() {
		fmt.Fprintf(buf, `<stop offset="%.4f" stop-color="%s" stop-opacity="%.3f"/>`,
			s.Offset, paint.Hex(s.Color), paint.Opacity(s.Color))
	}
	buf.WriteString("</linearGradient></defs>\n")
	return fmt.Sprintf(`fill="url(#%s)"`, gradID)
}

func paintAttr(attr string, c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`%s="%s"`, attr, paint.Hex(c))
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%.3f"`, attr, paint.Hex(c), attr, paint.Opacity(c))
}

func renderImage(buf *bytes.Buffer, l *view.Layer, pad string) error {
	var png bytes.Buffer
	if err := imaging.Encode(&png, l.Image, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode image for layer %s", l.Name)
	}
	aspect := "xMidYMid slice"
	if l.ContentMode == view.ContentAspectFit {
		aspect = "xMidYMid meet"
	}
	fmt.Fprintf(buf, `%s  <image width="%.2f" height="%.2f" preserveAspectRatio="%s" href="data:image/png;base64,%s"/>`+"\n",
		pad, l.Frame.W, l.Frame.H, aspect, base64.StdEncoding.EncodeToString(png.Bytes()))
	return nil
}

func renderText(buf *bytes.Buffer, l *view.Layer, pad string) error {
	f, err := resolveFont(l)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, `%s  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" font-weight="%s" %s>%s</text>`+"\n",
		pad, l.Frame.W/2, l.Frame.H/2, f.SVGFamily(), f.Size, f.SVGWeight(), paintAttr("fill", l.Text.Color), escapeXML(l.Text.Value))
	return nil
}
