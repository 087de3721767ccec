package profile

import (
	"image/color"

	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/thumbnail"
)

// DefaultSizeRatio is the default overlay side relative to the widget width.
const DefaultSizeRatio = 0.25

// Option configures a Widget at construction.
type Option func(*Widget)

// WithID sets the instance ID used to namespace rendered element IDs.
// By default a random UUID is used.
func WithID(id string) Option {
	return func(w *Widget) {
		if id != "" {
			w.id = id
		}
	}
}

// WithBadgeSizeRatio sets the badge side as a fraction of the widget width.
func WithBadgeSizeRatio(r float64) Option {
	return func(w *Widget) { w.badgeSizeRatio = r }
}

// WithChannelSizeRatio sets the channel side as a fraction of the widget width.
func WithChannelSizeRatio(r float64) Option {
	return func(w *Widget) { w.channelSizeRatio = r }
}

// WithProfileFont sets the font of the initials thumbnail.
func WithProfileFont(f fonts.Font) Option {
	return func(w *Widget) { w.profileFont = &f }
}

// WithProfileFontColor sets the color of the initials.
func WithProfileFontColor(c color.NRGBA) Option {
	return func(w *Widget) { w.profileFontColor = &c }
}

// WithBadgeFont sets the font of the badge count.
func WithBadgeFont(f fonts.Font) Option {
	return func(w *Widget) { w.badgeFont = &f }
}

// WithBadgeFontColor sets the color of the badge count.
func WithBadgeFontColor(c color.NRGBA) Option {
	return func(w *Widget) { w.badgeFontColor = &c }
}

// WithThumbnailGenerator replaces the generator used for initials thumbnails.
func WithThumbnailGenerator(g *thumbnail.Generator) Option {
	return func(w *Widget) {
		if g != nil {
			w.gen = g
		}
	}
}
