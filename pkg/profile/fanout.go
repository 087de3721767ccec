package profile

import (
	"image/color"
	"strings"

	"github.com/matzehuels/displaypicture/pkg/view"
)

// LayerSet selects which elements of a widget a fan-out call touches.
type LayerSet uint8

const (
	LayerPrimary LayerSet = 1 << iota
	LayerBadge
	LayerChannel

	// AllLayers selects the primary layer and both overlays.
	AllLayers = LayerPrimary | LayerBadge | LayerChannel
)

// Has reports whether s includes every layer in l.
func (s LayerSet) Has(l LayerSet) bool { return s&l == l }

// String lists the selected layers, e.g. "primary|badge".
func (s LayerSet) String() string {
	var parts []string
	if s.Has(LayerPrimary) {
		parts = append(parts, "primary")
	}
	if s.Has(LayerBadge) {
		parts = append(parts, "badge")
	}
	if s.Has(LayerChannel) {
		parts = append(parts, "channel")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ApplyShape sets shape on every selected element of w. Absent overlays are skipped.
func ApplyShape(w *Widget, shape view.Shape, layers LayerSet) {
	if layers.Has(LayerPrimary) {
		w.SetShape(shape)
	}
	if layers.Has(LayerBadge) {
		w.SetBadgeShape(shape)
	}
	if layers.Has(LayerChannel) {
		w.SetChannelShape(shape)
	}
}

// ApplyBorder sets the border on every selected element of w. Absent overlays are skipped.
func ApplyBorder(w *Widget, width float64, c color.NRGBA, layers LayerSet) {
	if layers.Has(LayerPrimary) {
		w.SetBorder(width, c)
	}
	if layers.Has(LayerBadge) {
		w.SetBadgeBorder(width, c)
	}
	if layers.Has(LayerChannel) {
		w.SetChannelBorder(width, c)
	}
}
