package profile

import (
	"image"
	"image/color"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/observability"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/thumbnail"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// Layer names in the rendered tree.
const (
	LayerNameRoot    = "profile"
	LayerNamePrimary = "picture"
	LayerNameBadge   = "badge"
	LayerNameChannel = "channel"
)

// Widget is a profile picture with optional badge and channel overlays.
type Widget struct {
	id      string
	root    *view.Layer
	primary *view.Layer
	gen     *thumbnail.Generator

	source      Source
	shape       view.Shape
	borderWidth float64
	borderColor color.NRGBA
	background  []color.NRGBA

	badgeSizeRatio   float64
	channelSizeRatio float64
	profileFont      *fonts.Font
	profileFontColor *color.NRGBA
	badgeFont        *fonts.Font
	badgeFontColor   *color.NRGBA

	badge      *SubElement
	badgePos   BadgePosition
	channel    *SubElement
	channelPos ChannelPosition
}

// New creates an empty widget occupying frame.
//
// It fails with INVALID_CONFIG when the frame size or a size ratio is out of range.
func New(frame geom.Rect, opts ...Option) (*Widget, error) {
	if err := errors.ValidateDimensions(frame.W, frame.H); err != nil {
		return nil, err
	}

	w := &Widget{
		id:               uuid.NewString(),
		gen:              thumbnail.NewGenerator(),
		borderColor:      paint.Clear,
		background:       []color.NRGBA{paint.White},
		badgeSizeRatio:   DefaultSizeRatio,
		channelSizeRatio: DefaultSizeRatio,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := errors.ValidateSizeRatio("badge size ratio", w.badgeSizeRatio); err != nil {
		return nil, err
	}
	if err := errors.ValidateSizeRatio("channel size ratio", w.channelSizeRatio); err != nil {
		return nil, err
	}

	w.root = view.NewLayer(LayerNameRoot, frame)
	w.primary = view.NewLayer(LayerNamePrimary, frame.Bounds())
	w.primary.ContentMode = view.ContentAspectFill
	w.primary.ClipsToBounds = true
	w.root.AddChild(w.primary)

	return w, nil
}

// ID returns the instance ID.
func (w *Widget) ID() string { return w.id }

// Frame returns the widget frame.
func (w *Widget) Frame() geom.Rect { return w.root.Frame }

// Layer returns the root of the widget's layer tree.
func (w *Widget) Layer() *view.Layer { return w.root }

// Primary returns the layer showing the photo or thumbnail.
func (w *Widget) Primary() *view.Layer { return w.primary }

// Source returns the active content.
func (w *Widget) Source() Source { return w.source }

// Shape returns the primary layer's shape.
func (w *Widget) Shape() view.Shape { return w.shape }

// Border returns the primary layer's border width and color.
func (w *Widget) Border() (float64, color.NRGBA) { return w.borderWidth, w.borderColor }

// Background returns the stored thumbnail background colors.
func (w *Widget) Background() []color.NRGBA { return slices.Clone(w.background) }

// BadgeSizeRatio returns the badge side as a fraction of the widget width.
func (w *Widget) BadgeSizeRatio() float64 { return w.badgeSizeRatio }

// ChannelSizeRatio returns the channel side as a fraction of the widget width.
func (w *Widget) ChannelSizeRatio() float64 { return w.channelSizeRatio }

// ProfileFont returns the thumbnail font, or nil when the fitted default is used.
func (w *Widget) ProfileFont() *fonts.Font { return w.profileFont }

// ProfileFontColor returns the thumbnail text color, or nil for the default.
func (w *Widget) ProfileFontColor() *color.NRGBA { return w.profileFontColor }

// =============================================================================
// Primary layer
// =============================================================================

// SetDisplayName shows the initials of name, discarding any photo.
// The thumbnail uses the current profile font, font color and background.
//
// An invalid name fails with INVALID_INPUT and leaves the widget unchanged.
func (w *Widget) SetDisplayName(name string) error {
	img, err := w.renderThumbnail(name)
	if err != nil {
		return err
	}
	w.source = NameSource(name)
	w.primary.Image = img
	observability.Widget().OnSourceChanged(w.id, SourceName.String())
	return nil
}

func (w *Widget) renderThumbnail(name string) (image.Image, error) {
	start := time.Now()
	thumb, err := w.gen.Render(name, w.primary.Frame, thumbnail.Options{
		Font:       w.profileFont,
		TextColor:  w.profileFontColor,
		Background: w.background,
	})
	if err != nil {
		return nil, err
	}
	observability.Widget().OnThumbnailGenerated(w.id, thumb.Layout.Initials, thumb.Image.Bounds().Size(), time.Since(start))
	return thumb.Image, nil
}

// SetPhoto shows img, discarding any display name.
// A nil or empty image fails with INVALID_INPUT.
func (w *Widget) SetPhoto(img image.Image) error {
	if err := checkImage(img, "photo"); err != nil {
		return err
	}
	w.source = PhotoSource(img)
	w.primary.Image = img
	observability.Widget().OnSourceChanged(w.id, SourcePhoto.String())
	return nil
}

// SetBorder styles the primary layer's border. Overlays are not affected.
// A width of zero or less clears the border.
func (w *Widget) SetBorder(width float64, c color.NRGBA) {
	if width <= 0 {
		width, c = 0, paint.Clear
	}
	w.borderWidth, w.borderColor = width, c
	view.ApplyBorder(w.primary, width, c)
}

// SetShape sets the primary layer's shape. Overlays are not affected.
func (w *Widget) SetShape(shape view.Shape) {
	w.shape = shape
	view.ApplyShape(w.primary, shape)
}

// SetBackground stores the thumbnail background colors. The thumbnail is
// regenerated right away when a display name is showing; with a photo the
// colors only take effect once a name is set again.
//
// An empty list fails with INVALID_INPUT.
func (w *Widget) SetBackground(colors []color.NRGBA) error {
	if len(colors) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "background needs at least one color")
	}
	w.background = slices.Clone(colors)

	name, ok := w.source.Name()
	if !ok {
		return nil
	}
	img, err := w.renderThumbnail(name)
	if err != nil {
		return err
	}
	w.primary.Image = img
	return nil
}

// SetProfileFont sets the thumbnail font used at the next generation.
// Nil restores the fitted default.
func (w *Widget) SetProfileFont(f *fonts.Font) {
	w.profileFont = cloneFont(f)
}

// SetProfileFontColor sets the initials color used at the next generation.
// Nil restores black.
func (w *Widget) SetProfileFontColor(c *color.NRGBA) {
	w.profileFontColor = cloneColor(c)
}

// =============================================================================
// Badge
// =============================================================================

// sideFor returns an overlay side length for ratio.
func (w *Widget) sideFor(ratio float64) float64 {
	return w.root.Frame.W * ratio
}

// BadgeFrame returns the frame a badge gets at pos, in the widget's bounds.
func (w *Widget) BadgeFrame(pos BadgePosition) geom.Rect {
	side := w.sideFor(w.badgeSizeRatio)
	b := w.root.Bounds()
	x := b.MinX()
	if pos == BadgeTopRight {
		x = b.MaxX() - side
	}
	return geom.R(x, b.MinY(), side, side)
}

// AddBadge attaches a badge at pos showing count, replacing any existing badge.
func (w *Widget) AddBadge(pos BadgePosition, count int) {
	if w.badge != nil {
		w.badge.Layer().RemoveFromParent()
	}

	b := NewSubElement(LayerNameBadge, w.BadgeFrame(pos), KindBadge)
	if w.badgeFont != nil {
		b.SetFont(w.badgeFont)
	}
	if w.badgeFontColor != nil {
		b.SetTextColor(*w.badgeFontColor)
	}
	b.SetCount(count)

	w.badge, w.badgePos = b, pos
	w.root.AddChild(b.Layer())
	observability.Widget().OnOverlayAdded(w.id, KindBadge.String())
}

// RemoveBadge detaches the badge. It does nothing when there is no badge.
func (w *Widget) RemoveBadge() {
	if w.badge == nil {
		return
	}
	w.badge.Layer().RemoveFromParent()
	w.badge = nil
	observability.Widget().OnOverlayRemoved(w.id, KindBadge.String())
}

// Badge returns the badge when one is attached.
func (w *Widget) Badge() (*SubElement, bool) { return w.badge, w.badge != nil }

// BadgePosition returns the badge corner when a badge is attached.
func (w *Widget) BadgePosition() (BadgePosition, bool) { return w.badgePos, w.badge != nil }

// SetBadgeBackground sets the badge fill. Without a badge it does nothing.
func (w *Widget) SetBadgeBackground(colors []color.NRGBA) error {
	if w.badge == nil {
		return nil
	}
	return w.badge.SetBackgroundColors(colors)
}

// SetBadgeBorder styles the badge border. Without a badge it does nothing.
func (w *Widget) SetBadgeBorder(width float64, c color.NRGBA) {
	if w.badge != nil {
		w.badge.SetBorder(width, c)
	}
}

// SetBadgeShape sets the badge shape. Without a badge it does nothing.
func (w *Widget) SetBadgeShape(shape view.Shape) {
	if w.badge != nil {
		w.badge.SetShape(shape)
	}
}

// SetBadgePosition moves the badge to pos. Without a badge it does nothing.
func (w *Widget) SetBadgePosition(pos BadgePosition) {
	if w.badge == nil {
		return
	}
	w.badgePos = pos
	w.badge.SetFrame(w.BadgeFrame(pos))
}

// SetBadgeCount sets the badge count, clamped to zero. Without a badge it does nothing.
func (w *Widget) SetBadgeCount(count int) {
	if w.badge != nil {
		w.badge.SetCount(count)
	}
}

// SetBadgeSizeRatio resizes badges to ratio times the widget width.
// A ratio outside (0, 1] fails with INVALID_CONFIG.
func (w *Widget) SetBadgeSizeRatio(ratio float64) error {
	if err := errors.ValidateSizeRatio("badge size ratio", ratio); err != nil {
		return err
	}
	w.badgeSizeRatio = ratio
	if w.badge != nil {
		w.badge.SetFrame(w.BadgeFrame(w.badgePos))
	}
	return nil
}

// SetBadgeFont sets the count font for the current and future badges.
// Nil restores the default.
func (w *Widget) SetBadgeFont(f *fonts.Font) {
	w.badgeFont = cloneFont(f)
	if w.badge != nil {
		w.badge.SetFont(w.badgeFont)
	}
}

// SetBadgeFontColor sets the count color for the current and future badges.
// Nil restores black.
func (w *Widget) SetBadgeFontColor(c *color.NRGBA) {
	w.badgeFontColor = cloneColor(c)
	if w.badge == nil {
		return
	}
	if c == nil {
		w.badge.SetTextColor(paint.Black)
		return
	}
	w.badge.SetTextColor(*c)
}

// =============================================================================
// Channel
// =============================================================================

// ChannelFrame returns the frame a channel icon gets at pos, in the widget's bounds.
func (w *Widget) ChannelFrame(pos ChannelPosition) geom.Rect {
	side := w.sideFor(w.channelSizeRatio)
	b := w.root.Bounds()
	x := b.MinX()
	if pos == ChannelBottomRight {
		x = b.MaxX() - side
	}
	return geom.R(x, b.MaxY()-side, side, side)
}

// AddChannel attaches a channel icon at pos, replacing any existing channel.
// A nil or empty image fails with INVALID_INPUT.
func (w *Widget) AddChannel(pos ChannelPosition, img image.Image) error {
	if err := checkImage(img, "channel image"); err != nil {
		return err
	}
	if w.channel != nil {
		w.channel.Layer().RemoveFromParent()
	}

	c := NewSubElement(LayerNameChannel, w.ChannelFrame(pos), KindChannel)
	c.SetImage(img)

	w.channel, w.channelPos = c, pos
	w.root.AddChild(c.Layer())
	observability.Widget().OnOverlayAdded(w.id, KindChannel.String())
	return nil
}

// RemoveChannel detaches the channel. It does nothing when there is no channel.
func (w *Widget) RemoveChannel() {
	if w.channel == nil {
		return
	}
	w.channel.Layer().RemoveFromParent()
	w.channel = nil
	observability.Widget().OnOverlayRemoved(w.id, KindChannel.String())
}

// Channel returns the channel when one is attached.
func (w *Widget) Channel() (*SubElement, bool) { return w.channel, w.channel != nil }

// ChannelPosition returns the channel corner when a channel is attached.
func (w *Widget) ChannelPosition() (ChannelPosition, bool) { return w.channelPos, w.channel != nil }

// SetChannelImage replaces the channel icon. Without a channel it does
// nothing. A nil or empty image fails with INVALID_INPUT.
func (w *Widget) SetChannelImage(img image.Image) error {
	if w.channel == nil {
		return nil
	}
	if err := checkImage(img, "channel image"); err != nil {
		return err
	}
	w.channel.SetImage(img)
	return nil
}

// SetChannelBorder styles the channel border. Without a channel it does nothing.
func (w *Widget) SetChannelBorder(width float64, c color.NRGBA) {
	if w.channel != nil {
		w.channel.SetBorder(width, c)
	}
}

// SetChannelShape sets the channel shape. Without a channel it does nothing.
func (w *Widget) SetChannelShape(shape view.Shape) {
	if w.channel != nil {
		w.channel.SetShape(shape)
	}
}

// SetChannelPosition moves the channel to pos. Without a channel it does nothing.
func (w *Widget) SetChannelPosition(pos ChannelPosition) {
	if w.channel == nil {
		return
	}
	w.channelPos = pos
	w.channel.SetFrame(w.ChannelFrame(pos))
}

// SetChannelSizeRatio resizes channels to ratio times the widget width.
// A ratio outside (0, 1] fails with INVALID_CONFIG.
func (w *Widget) SetChannelSizeRatio(ratio float64) error {
	if err := errors.ValidateSizeRatio("channel size ratio", ratio); err != nil {
		return err
	}
	w.channelSizeRatio = ratio
	if w.channel != nil {
		w.channel.SetFrame(w.ChannelFrame(w.channelPos))
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

func checkImage(img image.Image, what string) error {
	if img == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s is missing", what)
	}
	if img.Bounds().Empty() {
		return errors.New(errors.ErrCodeInvalidInput, "%s is empty", what)
	}
	return nil
}

func cloneFont(f *fonts.Font) *fonts.Font {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}

func cloneColor(c *color.NRGBA) *color.NRGBA {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
