package config

import (
	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/profile"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// Validate checks every field without building anything.
func (c Config) Validate() error {
	w := c.Widget
	if err := errors.ValidateDimensions(w.Width, w.Height); err != nil {
		return err
	}
	if _, err := view.ParseShape(w.Shape); err != nil {
		return invalid("widget.shape", err)
	}
	if err := errors.ValidateBorderWidth("widget.border_width", w.BorderWidth); err != nil {
		return err
	}
	if err := checkColor("widget.border_color", w.BorderColor); err != nil {
		return err
	}
	if len(w.Background) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "widget.background needs at least one color")
	}
	if err := checkColors("widget.background", w.Background); err != nil {
		return err
	}
	if err := errors.ValidateSizeRatio("widget.badge_size_ratio", w.BadgeSizeRatio); err != nil {
		return err
	}
	if err := errors.ValidateSizeRatio("widget.channel_size_ratio", w.ChannelSizeRatio); err != nil {
		return err
	}

	p := c.Profile
	if p.Name != "" {
		if err := errors.ValidateName(p.Name); err != nil {
			return invalid("profile.name", err)
		}
	}
	if p.Font != nil {
		if err := p.Font.Validate(); err != nil {
			return invalid("profile.font", err)
		}
	}
	if err := checkColor("profile.font_color", p.FontColor); err != nil {
		return err
	}

	b := c.Badge
	if _, err := profile.ParseBadgePosition(b.Position); err != nil {
		return invalid("badge.position", err)
	}
	if b.Count < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "badge.count must be >= 0, got %d", b.Count)
	}
	if err := checkColors("badge.background", b.Background); err != nil {
		return err
	}
	if b.Font != nil {
		if err := b.Font.Validate(); err != nil {
			return invalid("badge.font", err)
		}
	}
	if err := checkColor("badge.font_color", b.FontColor); err != nil {
		return err
	}

	ch := c.Channel
	if _, err := profile.ParseChannelPosition(ch.Position); err != nil {
		return invalid("channel.position", err)
	}
	if ch.Enabled && ch.Image == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "channel.image is required when the channel is enabled")
	}
	return nil
}

func invalid(field string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: %s", field, errors.UserMessage(err))
}

func checkColor(field, s string) error {
	if s == "" {
		return nil
	}
	if _, err := paint.Parse(s); err != nil {
		return invalid(field, err)
	}
	return nil
}

func checkColors(field string, ss []string) error {
	if _, err := paint.ParseList(ss); err != nil {
		return invalid(field, err)
	}
	return nil
}
