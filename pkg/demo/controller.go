package demo

import (
	"image/color"
	"math/rand/v2"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/profile"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// Slider bounds for the border width control.
const (
	MinBorderWidth = 0
	MaxBorderWidth = 10
)

// Initial control values.
const (
	initialBackgroundIndex = 5
	// gradientPick bounds the random gradient indexes, so the last palette
	// entry is never chosen for the profile background.
	gradientPick = 9
)

// State is a snapshot of every control on the settings screen.
type State struct {
	Profile       TestProfile
	ProfileIndex  int
	ProfileCount  int
	Shape         view.Shape
	ShowImage     bool
	BorderWidth   float64
	BorderColor   color.NRGBA
	BadgeOn       bool
	BadgeRight    bool
	BadgeCount    int
	BadgeColor    color.NRGBA
	ChannelOn     bool
	ChannelRight  bool
	Background    []color.NRGBA
	BorderColorOK bool
	BadgeSideOK   bool
	ChannelSideOK bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeed seeds the gradient color picker. The same seed yields the same
// sequence of profile backgrounds.
func WithSeed(seed uint64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithAssets sets where photos and channel icons come from.
// The default draws placeholders.
func WithAssets(a Assets) Option {
	return func(c *Controller) {
		if a != nil {
			c.assets = a
		}
	}
}

// WithProfiles replaces the demo data set. An empty list is ignored.
func WithProfiles(p []TestProfile) Option {
	return func(c *Controller) {
		if len(p) > 0 {
			c.profiles = p
		}
	}
}

// Controller maps settings screen controls onto a profile widget.
type Controller struct {
	w        *profile.Widget
	assets   Assets
	profiles []TestProfile
	colors   []color.NRGBA
	rng      *rand.Rand

	profileIndex     int
	borderColorIndex int
	backgroundIndex  int
	shape            view.Shape
	showImage        bool
	borderWidth      float64
	badgeOn          bool
	badgeRight       bool
	channelOn        bool
	channelRight     bool
}

// NewController returns a controller for w in its initial state. Call
// [Controller.Start] to push that state to the widget.
func NewController(w *profile.Widget, opts ...Option) *Controller {
	c := &Controller{
		w:               w,
		assets:          PlaceholderAssets{},
		profiles:        Profiles(),
		colors:          paint.DemoColors,
		backgroundIndex: initialBackgroundIndex,
		shape:           view.ShapeSquare,
		showImage:       true,
		badgeRight:      true,
		channelRight:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// Widget returns the driven widget.
func (c *Controller) Widget() *profile.Widget { return c.w }

// Start shows the first profile.
func (c *Controller) Start() error {
	return c.switchProfile()
}

// State returns the current control values.
func (c *Controller) State() State {
	s := State{
		Profile:       c.profiles[c.profileIndex],
		ProfileIndex:  c.profileIndex,
		ProfileCount:  len(c.profiles),
		Shape:         c.shape,
		ShowImage:     c.showImage,
		BorderWidth:   c.borderWidth,
		BorderColor:   c.colors[c.borderColorIndex],
		BadgeOn:       c.badgeOn,
		BadgeRight:    c.badgeRight,
		BadgeColor:    c.colors[c.backgroundIndex],
		ChannelOn:     c.channelOn,
		ChannelRight:  c.channelRight,
		Background:    c.w.Background(),
		BorderColorOK: c.BorderColorEnabled(),
		BadgeSideOK:   c.BadgePositionEnabled(),
		ChannelSideOK: c.ChannelPositionEnabled(),
	}
	if b, ok := c.w.Badge(); ok {
		s.BadgeCount = b.Count()
	}
	return s
}

// BorderColorEnabled reports whether the border color button responds.
// It does once the border width is above zero.
func (c *Controller) BorderColorEnabled() bool { return c.borderWidth > 0 }

// BadgePositionEnabled reports whether the badge side switch responds.
func (c *Controller) BadgePositionEnabled() bool { return c.badgeOn }

// ChannelPositionEnabled reports whether the channel side switch responds.
func (c *Controller) ChannelPositionEnabled() bool { return c.channelOn }

// =============================================================================
// Actions
// =============================================================================

// ToggleShape switches every layer to a circle when on, or a square.
func (c *Controller) ToggleShape(on bool) {
	c.shape = view.ShapeSquare
	if on {
		c.shape = view.ShapeCircle
	}
	profile.ApplyShape(c.w, c.shape, profile.AllLayers)
}

// SetBorderWidth moves the slider to v, clamped to the slider range, and
// applies the border with the current color to every layer.
func (c *Controller) SetBorderWidth(v float64) {
	c.borderWidth = min(max(v, MinBorderWidth), MaxBorderWidth)
	c.applyBorder()
}

func (c *Controller) applyBorder() {
	profile.ApplyBorder(c.w, c.borderWidth, c.colors[c.borderColorIndex], profile.AllLayers)
}

// CycleBorderColor advances to the next palette color and applies it to
// every layer. It reports false, changing nothing, while the button is disabled.
func (c *Controller) CycleBorderColor() bool {
	if !c.BorderColorEnabled() {
		return false
	}
	c.borderColorIndex = c.next(c.borderColorIndex)
	c.applyBorder()
	return true
}

// CycleBackground advances the badge color, picks a fresh two color gradient
// for the profile thumbnail and applies both.
func (c *Controller) CycleBackground() error {
	c.backgroundIndex = c.next(c.backgroundIndex)
	gradient := []color.NRGBA{
		c.colors[c.rng.IntN(gradientPick)],
		c.colors[c.rng.IntN(gradientPick)],
	}
	if err := c.w.SetBackground(gradient); err != nil {
		return err
	}
	return c.w.SetBadgeBackground([]color.NRGBA{c.colors[c.backgroundIndex]})
}

// ToggleBadge attaches or detaches the badge. A new badge takes the current
// side, shape, border and badge color, and starts at zero.
func (c *Controller) ToggleBadge(on bool) error {
	c.badgeOn = on
	if !on {
		c.w.RemoveBadge()
		return nil
	}
	c.w.AddBadge(c.badgePosition(), 0)
	c.w.SetBadgeShape(c.shape)
	c.w.SetBadgeBorder(c.borderWidth, c.colors[c.borderColorIndex])
	return c.w.SetBadgeBackground([]color.NRGBA{c.colors[c.backgroundIndex]})
}

// ToggleChannel attaches or detaches the channel icon of the current
// profile. When the icon cannot be loaded the channel stays off.
func (c *Controller) ToggleChannel(on bool) error {
	if !on {
		c.channelOn = false
		c.w.RemoveChannel()
		return nil
	}
	icon, err := c.assets.Load(c.profiles[c.profileIndex].Channel)
	if err != nil {
		return err
	}
	if err := c.w.AddChannel(c.channelPosition(), icon); err != nil {
		return err
	}
	c.channelOn = true
	c.w.SetChannelShape(c.shape)
	c.w.SetChannelBorder(c.borderWidth, c.colors[c.borderColorIndex])
	return nil
}

// ToggleBadgePosition moves the badge right when on, or left. It reports
// false, changing nothing, while the badge is off.
func (c *Controller) ToggleBadgePosition(on bool) bool {
	if !c.BadgePositionEnabled() {
		return false
	}
	c.badgeRight = on
	c.w.SetBadgePosition(c.badgePosition())
	return true
}

// ToggleChannelPosition moves the channel right when on, or left. It
// reports false, changing nothing, while the channel is off.
func (c *Controller) ToggleChannelPosition(on bool) bool {
	if !c.ChannelPositionEnabled() {
		return false
	}
	c.channelRight = on
	c.w.SetChannelPosition(c.channelPosition())
	return true
}

// ToggleProfileImage shows the profile photo when on, or the initials.
// When the photo cannot be loaded the switch stays where it was.
func (c *Controller) ToggleProfileImage(on bool) error {
	prev := c.showImage
	c.showImage = on
	if err := c.switchProfile(); err != nil {
		c.showImage = prev
		return err
	}
	return nil
}

// NextProfile shows the next entry of the data set, wrapping after the last.
// An attached channel keeps its icon.
func (c *Controller) NextProfile() error {
	prev := c.profileIndex
	c.profileIndex = (c.profileIndex + 1) % len(c.profiles)
	if err := c.switchProfile(); err != nil {
		c.profileIndex = prev
		return err
	}
	return nil
}

// IncrementBadge raises the badge count by one. Without a badge it does nothing.
func (c *Controller) IncrementBadge() { c.addToBadge(1) }

// DecrementBadge lowers the badge count by one, stopping at zero.
func (c *Controller) DecrementBadge() { c.addToBadge(-1) }

func (c *Controller) addToBadge(delta int) {
	b, ok := c.w.Badge()
	if !ok {
		return
	}
	c.w.SetBadgeCount(b.Count() + delta)
}

func (c *Controller) switchProfile() error {
	p := c.profiles[c.profileIndex]
	if !c.showImage {
		return c.w.SetDisplayName(p.Name)
	}
	img, err := c.assets.Load(p.Image)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "photo for %s", p.Name)
	}
	return c.w.SetPhoto(img)
}

func (c *Controller) next(i int) int {
	return (i + 1) % len(c.colors)
}

func (c *Controller) badgePosition() profile.BadgePosition {
	if c.badgeRight {
		return profile.BadgeTopRight
	}
	return profile.BadgeTopLeft
}

func (c *Controller) channelPosition() profile.ChannelPosition {
	if c.channelRight {
		return profile.ChannelBottomRight
	}
	return profile.ChannelBottomLeft
}
