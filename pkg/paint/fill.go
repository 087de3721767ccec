package paint

import (
	"image/color"
	"slices"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

// Kind distinguishes solid fills from gradients.
type Kind int

const (
	KindSolid Kind = iota
	KindGradient
)

// String returns "solid" or "gradient".
func (k Kind) String() string {
	if k == KindGradient {
		return "gradient"
	}
	return "solid"
}

// Stop is a gradient color stop. Offset runs from 0 (top) to 1 (bottom).
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Fill is a background fill made of one or more ordered colors.
// The zero value is not a valid fill; use [NewFill] or [Solid].
type Fill struct {
	colors []color.NRGBA
}

// NewFill creates a fill from colors. It fails with INVALID_INPUT when colors is empty.
func NewFill(colors ...color.NRGBA) (Fill, error) {
	if len(colors) == 0 {
		return Fill{}, errors.New(errors.ErrCodeInvalidInput, "background needs at least one color")
	}
	return Fill{colors: slices.Clone(colors)}, nil
}

// Solid returns a single-color fill.
func Solid(c color.NRGBA) Fill {
	return Fill{colors: []color.NRGBA{c}}
}

// Kind reports whether the fill is solid or a gradient.
func (f Fill) Kind() Kind {
	if len(f.colors) >= 2 {
		return KindGradient
	}
	return KindSolid
}

// Colors returns a copy of the fill's colors in order.
func (f Fill) Colors() []color.NRGBA {
	return slices.Clone(f.colors)
}

// Color returns the first color. For solid fills this is the fill color.
func (f Fill) Color() color.NRGBA {
	if len(f.colors) == 0 {
		return Clear
	}
	return f.colors[0]
}

// Stops returns evenly spaced stops spanning [0, 1].
// A solid fill yields a single stop at offset 0.
func (f Fill) Stops() []Stop {
	if len(f.colors) == 0 {
		return nil
	}
	if len(f.colors) == 1 {
		return []Stop{{Offset: 0, Color: f.colors[0]}}
	}
	stops := make([]Stop, len(f.colors))
	last := float64(len(f.colors) - 1)
	for i, c := range f.colors {
		stops[i] = Stop{Offset: float64(i) / last, Color: c}
	}
	return stops
}

// At samples the fill at offset t in [0, 1].
func (f Fill) At(t float64) color.NRGBA {
	if len(f.colors) < 2 {
		return f.Color()
	}
	t = min(1, max(0, t))
	pos := t * float64(len(f.colors)-1)
	i := int(pos)
	if i >= len(f.colors)-1 {
		return f.colors[len(f.colors)-1]
	}
	return Blend(f.colors[i], f.colors[i+1], pos-float64(i))
}

// Equal reports whether f and g have the same colors in the same order.
func (f Fill) Equal(g Fill) bool {
	return slices.Equal(f.colors, g.colors)
}
