// Package paint provides colors and background fills for widget layers.
//
// Colors are plain [color.NRGBA] values. A [Fill] is an ordered list of one or
// more colors: a single color paints a solid fill and two or more colors paint
// a linear gradient using the colors as evenly spaced stops.
package paint

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

// Clear is the fully transparent color.
var Clear = color.NRGBA{}

// Parse converts a color string into a color.
//
// Accepted forms are palette names ("red", "darkgray", "clear", ...),
// "#rgb", "#rrggbb" and "#rrggbbaa". Matching is case-insensitive.
func Parse(s string) (color.NRGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Clear, errors.New(errors.ErrCodeInvalidColor, "color cannot be empty")
	}
	if c, ok := named[key]; ok {
		return c, nil
	}
	if !strings.HasPrefix(key, "#") {
		return Clear, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
	}

	alpha := uint8(0xff)
	if len(key) == 9 {
		a, err := strconv.ParseUint(key[7:], 16, 8)
		if err != nil {
			return Clear, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha = uint8(a)
		key = key[:7]
	}

	c, err := colorful.Hex(key)
	if err != nil {
		return Clear, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ParseList parses every entry of ss with [Parse].
func ParseList(ss []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(ss))
	for _, s := range ss {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.NRGBA) string {
	return toColorful(c).Hex()
}

// Opacity returns the alpha channel of c as a value in [0, 1].
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 0xff
}

// Blend mixes a and b in RGB space. t=0 yields a, t=1 yields b.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = min(1, max(0, t))
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
	}
}
