// Package view provides the retained layer tree that widgets render into,
// along with the stylers that shape, border and fill a layer.
//
// A [Layer] is the platform view primitive: a frame in its parent's
// coordinate space, a corner radius, an optional border, an optional
// background fill, optional image or text content, and ordered children.
// Sinks in package sink walk the tree to produce SVG, PNG, PDF or JSON.
//
// Drawing order for a layer is background, image, text, children, then the
// border on top. Background and border always follow the corner radius;
// image, text and children are clipped to it only when ClipsToBounds is set.
package view

import (
	"image"
	"image/color"

	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
)

// ContentMode controls how an image is fitted into a layer's bounds.
type ContentMode int

const (
	// ContentAspectFill scales the image to cover the bounds, cropping overflow.
	ContentAspectFill ContentMode = iota
	// ContentAspectFit scales the image to fit inside the bounds.
	ContentAspectFit
)

// Text is a single centered line of text drawn in a layer.
type Text struct {
	Value string
	Font  fonts.Font
	Color color.NRGBA
	// FitWidth shrinks the font until the text fits the layer width.
	FitWidth bool
}

// Layer is a node in the retained view tree.
type Layer struct {
	Name          string
	Frame         geom.Rect
	CornerRadius  float64
	BorderWidth   float64
	BorderColor   color.NRGBA
	Background    *paint.Fill
	Image         image.Image
	ContentMode   ContentMode
	Text          *Text
	ClipsToBounds bool

	parent   *Layer
	children []*Layer
}

// NewLayer creates an empty layer with the given name and frame.
func NewLayer(name string, frame geom.Rect) *Layer {
	return &Layer{Name: name, Frame: frame}
}

// Bounds returns the layer's frame in its own coordinate space.
func (l *Layer) Bounds() geom.Rect { return l.Frame.Bounds() }

// Parent returns the layer's parent, or nil for a detached layer.
func (l *Layer) Parent() *Layer { return l.parent }

// Children returns a copy of the layer's children in drawing order.
func (l *Layer) Children() []*Layer {
	out := make([]*Layer, len(l.children))
	copy(out, l.children)
	return out
}

// AddChild appends child on top of the existing children.
// A child that already has a parent is detached from it first.
func (l *Layer) AddChild(child *Layer) {
	child.RemoveFromParent()
	child.parent = l
	l.children = append(l.children, child)
}

// RemoveChild detaches child. It reports whether child was found.
func (l *Layer) RemoveChild(child *Layer) bool {
	for i, c := range l.children {
		if c == child {
			l.children = append(l.children[:i], l.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveFromParent detaches l from its parent, if any.
func (l *Layer) RemoveFromParent() {
	if l.parent != nil {
		l.parent.RemoveChild(l)
	}
}

// RemoveAllChildren detaches every child.
func (l *Layer) RemoveAllChildren() {
	for _, c := range l.children {
		c.parent = nil
	}
	l.children = nil
}

// Child returns the first direct child with the given name.
func (l *Layer) Child(name string) (*Layer, bool) {
	for _, c := range l.children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Walk visits l and its descendants depth-first in drawing order.
// Returning false from fn skips the visited layer's children.
func (l *Layer) Walk(fn func(*Layer) bool) {
	if !fn(l) {
		return
	}
	for _, c := range l.children {
		c.Walk(fn)
	}
}

// HasBorder reports whether a border will be drawn.
func (l *Layer) HasBorder() bool {
	return l.BorderWidth > 0 && l.BorderColor.A > 0
}
