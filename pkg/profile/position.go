package profile

import (
	"strings"
	"unicode"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

// BadgePosition is the corner a badge is anchored to. Badges only live in
// the top corners. The zero value is BadgeTopLeft, but an empty string
// parses to DefaultBadgePosition.
type BadgePosition int

const (
	BadgeTopLeft BadgePosition = iota
	BadgeTopRight
)

// DefaultBadgePosition is used when no badge corner is given.
const DefaultBadgePosition = BadgeTopRight

// String returns "top-left" or "top-right".
func (p BadgePosition) String() string {
	if p == BadgeTopRight {
		return "top-right"
	}
	return "top-left"
}

// ParseBadgePosition converts "top-left" or "top-right" into a BadgePosition.
// An empty string yields DefaultBadgePosition.
func ParseBadgePosition(s string) (BadgePosition, error) {
	switch normalizePosition(s) {
	case "":
		return DefaultBadgePosition, nil
	case "top-left":
		return BadgeTopLeft, nil
	case "top-right":
		return BadgeTopRight, nil
	default:
		return DefaultBadgePosition, errors.New(errors.ErrCodeInvalidInput, "invalid badge position: %s (must be 'top-left' or 'top-right')", s)
	}
}

// ChannelPosition is the corner a channel icon is anchored to. Channels only
// live in the bottom corners. The zero value is ChannelBottomLeft, but an
// empty string parses to DefaultChannelPosition.
type ChannelPosition int

const (
	ChannelBottomLeft ChannelPosition = iota
	ChannelBottomRight
)

// DefaultChannelPosition is used when no channel corner is given.
const DefaultChannelPosition = ChannelBottomRight

// String returns "bottom-left" or "bottom-right".
func (p ChannelPosition) String() string {
	if p == ChannelBottomRight {
		return "bottom-right"
	}
	return "bottom-left"
}

// ParseChannelPosition converts "bottom-left" or "bottom-right" into a ChannelPosition.
// An empty string yields DefaultChannelPosition.
func ParseChannelPosition(s string) (ChannelPosition, error) {
	switch normalizePosition(s) {
	case "":
		return DefaultChannelPosition, nil
	case "bottom-left":
		return ChannelBottomLeft, nil
	case "bottom-right":
		return ChannelBottomRight, nil
	default:
		return DefaultChannelPosition, errors.New(errors.ErrCodeInvalidInput, "invalid channel position: %s (must be 'bottom-left' or 'bottom-right')", s)
	}
}

// normalizePosition accepts "topRight", "top_right" and "Top Right" spellings.
func normalizePosition(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '_' || r == ' ':
			b.WriteByte('-')
		case unicode.IsUpper(r) && prevLower:
			b.WriteByte('-')
		}
		if r != '_' && r != ' ' {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLower = unicode.IsLower(r)
	}
	return b.String()
}
