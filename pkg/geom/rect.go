// Package geom provides the rectangle type used for widget frames and bounds.
//
// All coordinates are in points with the origin at the top-left corner and Y
// growing downward, so MinY is the top edge and MaxY the bottom edge.
package geom

import "fmt"

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Bounds returns the rectangle in its own coordinate space (origin at zero).
func (r Rect) Bounds() Rect { return Rect{W: r.W, H: r.H} }

// Offset returns r translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset returns r shrunk by d on every side. The size never goes negative.
func (r Rect) Inset(d float64) Rect {
	w := max(0, r.W-2*d)
	h := max(0, r.H-2*d)
	return Rect{X: r.X + d, Y: r.Y + d, W: w, H: h}
}

// CenteredIn returns a rectangle of r's size centered inside outer.
func (r Rect) CenteredIn(outer Rect) Rect {
	return Rect{
		X: outer.MidX() - r.W/2,
		Y: outer.MidY() - r.H/2,
		W: r.W,
		H: r.H,
	}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// String formats r as {x y w h}.
func (r Rect) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", r.X, r.Y, r.W, r.H)
}
