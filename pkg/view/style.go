package view

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/paint"
)

// Shape selects the corner rounding of a layer.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
)

// String returns "square" or "circle".
func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "square"
}

// ParseShape converts "square" or "circle" into a Shape.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "":
		return ShapeSquare, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return ShapeSquare, errors.New(errors.ErrCodeInvalidInput, "invalid shape: %s (must be 'square' or 'circle')", s)
	}
}

// CornerRadius maps a shape and a bounding box to a corner radius.
// Circles get min(w, h)/2 and squares get 0.
func CornerRadius(shape Shape, w, h float64) float64 {
	if shape == ShapeCircle {
		return min(w, h) / 2
	}
	return 0
}

// ApplyShape sets l's corner radius for shape using l's current frame.
// Callers must reapply after changing the frame.
func ApplyShape(l *Layer, shape Shape) {
	l.CornerRadius = CornerRadius(shape, l.Frame.W, l.Frame.H)
}

// ApplyBorder sets l's border. A width of zero or less clears the border
// completely, so a previously drawn stroke never lingers.
func ApplyBorder(l *Layer, width float64, c color.NRGBA) {
	if width <= 0 {
		l.BorderWidth = 0
		l.BorderColor = paint.Clear
		return
	}
	l.BorderWidth = width
	l.BorderColor = c
}

// ApplyBackground replaces l's background fill. One color paints a solid
// fill; two or more paint a top-to-bottom gradient across l's bounds.
// Repeated calls replace the fill rather than stacking new ones.
func ApplyBackground(l *Layer, colors []color.NRGBA) error {
	f, err := paint.NewFill(colors...)
	if err != nil {
		return fmt.Errorf("layer %s: %w", l.Name, err)
	}
	l.Background = &f
	return nil
}

// ClearBackground removes l's background fill.
func ClearBackground(l *Layer) {
	l.Background = nil
}
