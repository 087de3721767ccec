package paint

import (
	"github.com/fogleman/gg"
)

// Pattern converts f into a gg fill pattern covering the box at (x, y) with
// size w by h. Gradients run from the top edge to the bottom edge.
func (f Fill) Pattern(x, y, w, h float64) gg.Pattern {
	if f.Kind() == KindSolid {
		return gg.NewSolidPattern(f.Color())
	}
	grad := gg.NewLinearGradient(x, y, x, y+h)
	for _, s := range f.Stops() {
		grad.AddColorStop(s.Offset, s.Color)
	}
	return grad
}
