package profile

import (
	"image"
	"image/color"
	"slices"
	"strconv"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// Kind is the configuration of a SubElement.
type Kind int

const (
	KindBadge Kind = iota
	KindChannel
)

// String returns "badge" or "channel".
func (k Kind) String() string {
	if k == KindChannel {
		return "channel"
	}
	return "badge"
}

// badgeFontScale sizes the default count font relative to the badge width.
const badgeFontScale = 0.8

type badgeVariant struct {
	label *view.Layer
}

type channelVariant struct {
	icon  *view.Layer
	image image.Image
}

// SubElement is an overlay owned by a Widget. It is configured either as a
// badge showing a count or as a channel showing an icon. Exactly one of the
// variants is live at a time.
//
// Count, badge colors, font and text color are kept across kind switches.
// The channel image is not.
type SubElement struct {
	layer *view.Layer
	kind  Kind

	shape       view.Shape
	borderWidth float64
	borderColor color.NRGBA

	count     int
	colors    []color.NRGBA
	font      *fonts.Font
	textColor color.NRGBA

	badge   *badgeVariant
	channel *channelVariant
}

// NewSubElement creates a sub-element with the given frame and configures it as kind.
func NewSubElement(name string, frame geom.Rect, kind Kind) *SubElement {
	s := &SubElement{
		layer:       view.NewLayer(name, frame),
		kind:        kind,
		borderColor: paint.Clear,
		colors:      []color.NRGBA{paint.White},
		textColor:   paint.Black,
	}
	s.Configure(kind)
	return s
}

// Configure tears down the current visuals and rebuilds them for kind.
// Configuring the current kind again is harmless.
func (s *SubElement) Configure(kind Kind) {
	var keep image.Image
	if kind == KindChannel && s.kind == KindChannel && s.channel != nil {
		keep = s.channel.image
	}

	s.layer.RemoveAllChildren()
	s.badge, s.channel = nil, nil
	s.kind = kind

	s.layer.ClipsToBounds = true
	view.ApplyBorder(s.layer, s.borderWidth, s.borderColor)
	view.ApplyShape(s.layer, s.shape)

	switch kind {
	case KindBadge:
		s.setupBadge()
	default:
		s.setupChannel(keep)
	}
}

func (s *SubElement) setupBadge() {
	_ = view.ApplyBackground(s.layer, s.colors)

	label := view.NewLayer(s.layer.Name+"-count", s.layer.Bounds())
	label.Text = s.countText()
	s.layer.AddChild(label)
	s.badge = &badgeVariant{label: label}
}

func (s *SubElement) setupChannel(img image.Image) {
	bg := paint.Solid(paint.White)
	s.layer.Background = &bg

	icon := view.NewLayer(s.layer.Name+"-icon", s.layer.Bounds())
	icon.ContentMode = view.ContentAspectFill
	icon.Image = img
	s.layer.AddChild(icon)
	s.channel = &channelVariant{icon: icon, image: img}
}

func (s *SubElement) countText() *view.Text {
	f := fonts.Font{Family: fonts.FamilyRegular, Size: s.layer.Frame.W * badgeFontScale}
	if s.font != nil {
		f = *s.font
	}
	return &view.Text{
		Value:    strconv.Itoa(s.count),
		Font:     f,
		Color:    s.textColor,
		FitWidth: true,
	}
}

func (s *SubElement) refreshLabel() {
	if s.badge != nil {
		s.badge.label.Text = s.countText()
	}
}

// Kind returns the active configuration.
func (s *SubElement) Kind() Kind { return s.kind }

// Layer returns the sub-element's layer.
func (s *SubElement) Layer() *view.Layer { return s.layer }

// Frame returns the frame in the owning widget's coordinate space.
func (s *SubElement) Frame() geom.Rect { return s.layer.Frame }

// Shape returns the current shape.
func (s *SubElement) Shape() view.Shape { return s.shape }

// Border returns the current border width and color.
func (s *SubElement) Border() (float64, color.NRGBA) { return s.borderWidth, s.borderColor }

// Count returns the last count set. It is kept while configured as a channel.
func (s *SubElement) Count() int { return s.count }

// BackgroundColors returns the badge fill colors.
func (s *SubElement) BackgroundColors() []color.NRGBA { return slices.Clone(s.colors) }

// Image returns the channel icon, or nil when configured as a badge.
func (s *SubElement) Image() image.Image {
	if s.channel == nil {
		return nil
	}
	return s.channel.image
}

// Label returns the count label layer when configured as a badge.
func (s *SubElement) Label() (*view.Layer, bool) {
	if s.badge == nil {
		return nil, false
	}
	return s.badge.label, true
}

// SetCount sets the badge count. Negative values are clamped to zero.
func (s *SubElement) SetCount(n int) {
	s.count = max(0, n)
	s.refreshLabel()
}

// SetBackgroundColors replaces the badge fill. It does nothing when
// configured as a channel. An empty list fails with INVALID_INPUT.
func (s *SubElement) SetBackgroundColors(colors []color.NRGBA) error {
	if s.kind != KindBadge {
		return nil
	}
	if len(colors) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "badge background needs at least one color")
	}
	s.colors = slices.Clone(colors)
	return view.ApplyBackground(s.layer, s.colors)
}

// SetImage replaces the channel icon. It does nothing when configured as a badge.
func (s *SubElement) SetImage(img image.Image) {
	if s.channel == nil {
		return
	}
	s.channel.image = img
	s.channel.icon.Image = img
}

// SetShape reapplies the corner radius for shape.
func (s *SubElement) SetShape(shape view.Shape) {
	s.shape = shape
	view.ApplyShape(s.layer, shape)
}

// SetBorder reapplies the border. A width of zero or less clears it.
func (s *SubElement) SetBorder(width float64, c color.NRGBA) {
	if width <= 0 {
		width, c = 0, paint.Clear
	}
	s.borderWidth, s.borderColor = width, c
	view.ApplyBorder(s.layer, width, c)
}

// SetFont sets the count font. Nil restores the default, sized from the frame.
func (s *SubElement) SetFont(f *fonts.Font) {
	if f != nil {
		cp := *f
		f = &cp
	}
	s.font = f
	s.refreshLabel()
}

// SetTextColor sets the count color.
func (s *SubElement) SetTextColor(c color.NRGBA) {
	s.textColor = c
	s.refreshLabel()
}

// SetFrame moves and resizes the sub-element and reapplies its shape.
func (s *SubElement) SetFrame(frame geom.Rect) {
	s.layer.Frame = frame
	for _, c := range s.layer.Children() {
		c.Frame = frame.Bounds()
	}
	view.ApplyShape(s.layer, s.shape)
	s.refreshLabel()
}
