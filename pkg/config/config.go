// Package config loads widget settings from TOML files and builds widgets
// from them.
//
// A config has four tables. Every key is optional; missing keys keep the
// values from [Default]:
//
//	[widget]
//	width = 200
//	height = 200
//	shape = "circle"
//	border_width = 2.0
//	border_color = "#ff0000"
//	background = ["#a9a9a9", "#ffffff"]
//	badge_size_ratio = 0.25
//	channel_size_ratio = 0.25
//
//	[profile]
//	name = "Ross Geller"
//	font = { family = "bold", size = 0 }
//	font_color = "#ffffff"
//
//	[badge]
//	enabled = true
//	position = "top-right"
//	count = 3
//	background = ["red"]
//
//	[channel]
//	enabled = true
//	position = "bottom-right"
//	image = "twitter.png"
//
// Unknown keys are rejected so typos surface instead of being ignored.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/profile"
)

// Default widget dimensions in points.
const (
	DefaultWidth  = 200.0
	DefaultHeight = 200.0
)

// Config is the full widget configuration.
type Config struct {
	Widget  Widget  `toml:"widget"`
	Profile Profile `toml:"profile"`
	Badge   Badge   `toml:"badge"`
	Channel Channel `toml:"channel"`
}

// Widget holds the root frame and primary layer styling.
type Widget struct {
	Width            float64  `toml:"width"`
	Height           float64  `toml:"height"`
	Shape            string   `toml:"shape"`
	BorderWidth      float64  `toml:"border_width"`
	BorderColor      string   `toml:"border_color"`
	Background       []string `toml:"background"`
	BadgeSizeRatio   float64  `toml:"badge_size_ratio"`
	ChannelSizeRatio float64  `toml:"channel_size_ratio"`
}

// Profile selects the widget content. Photo wins over Name when both are set.
type Profile struct {
	Name      string      `toml:"name"`
	Photo     string      `toml:"photo"`
	Font      *fonts.Font `toml:"font"`
	FontColor string      `toml:"font_color"`
}

// Badge configures the counter overlay.
type Badge struct {
	Enabled    bool        `toml:"enabled"`
	Position   string      `toml:"position"`
	Count      int         `toml:"count"`
	Background []string    `toml:"background"`
	Font       *fonts.Font `toml:"font"`
	FontColor  string      `toml:"font_color"`
}

// Channel configures the icon overlay.
type Channel struct {
	Enabled  bool   `toml:"enabled"`
	Position string `toml:"position"`
	Image    string `toml:"image"`
}

// Default returns the configuration of a plain 200x200 square widget.
func Default() Config {
	return Config{
		Widget: Widget{
			Width:            DefaultWidth,
			Height:           DefaultHeight,
			Shape:            "square",
			BorderColor:      "clear",
			Background:       []string{"white"},
			BadgeSizeRatio:   0.25,
			ChannelSizeRatio: 0.25,
		},
		Badge: Badge{
			Position: profile.DefaultBadgePosition.String(),
		},
		Channel: Channel{
			Position: profile.DefaultChannelPosition.String(),
		},
	}
}

// Load reads and validates a config file. Use [FileLoader] with the file's
// directory to resolve relative image paths when building.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a config from r on top of [Default] and validates it.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
