package config

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/matzehuels/displaypicture/pkg/geom"
	dpio "github.com/matzehuels/displaypicture/pkg/io"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/profile"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// ImageLoader loads an image referenced by a config file.
type ImageLoader func(path string) (image.Image, error)

// FileLoader loads images from disk, resolving relative paths against baseDir.
func FileLoader(baseDir string) ImageLoader {
	return func(path string) (image.Image, error) {
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return dpio.LoadImage(path)
	}
}

// Build validates cfg and constructs the widget it describes. The widget's
// shape and border are fanned out to every overlay. A nil loader reads images
// relative to the working directory.
func Build(cfg Config, load ImageLoader, opts ...profile.Option) (*profile.Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if load == nil {
		load = FileLoader(".")
	}

	// Validate has already checked every value parsed below.
	shape, _ := view.ParseShape(cfg.Widget.Shape)
	borderColor := parseColor(cfg.Widget.BorderColor, paint.Clear)
	background, _ := paint.ParseList(cfg.Widget.Background)

	wopts := []profile.Option{
		profile.WithBadgeSizeRatio(cfg.Widget.BadgeSizeRatio),
		profile.WithChannelSizeRatio(cfg.Widget.ChannelSizeRatio),
	}
	if f := cfg.Profile.Font; f != nil {
		wopts = append(wopts, profile.WithProfileFont(*f))
	}
	if cfg.Profile.FontColor != "" {
		wopts = append(wopts, profile.WithProfileFontColor(parseColor(cfg.Profile.FontColor, paint.Black)))
	}
	if f := cfg.Badge.Font; f != nil {
		wopts = append(wopts, profile.WithBadgeFont(*f))
	}
	if cfg.Badge.FontColor != "" {
		wopts = append(wopts, profile.WithBadgeFontColor(parseColor(cfg.Badge.FontColor, paint.Black)))
	}

	w, err := profile.New(geom.R(0, 0, cfg.Widget.Width, cfg.Widget.Height), append(wopts, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := w.SetBackground(background); err != nil {
		return nil, err
	}

	switch {
	case cfg.Profile.Photo != "":
		img, err := load(cfg.Profile.Photo)
		if err != nil {
			return nil, err
		}
		if err := w.SetPhoto(img); err != nil {
			return nil, err
		}
	case cfg.Profile.Name != "":
		if err := w.SetDisplayName(cfg.Profile.Name); err != nil {
			return nil, err
		}
	}

	if b := cfg.Badge; b.Enabled {
		pos, _ := profile.ParseBadgePosition(b.Position)
		w.AddBadge(pos, b.Count)
		if len(b.Background) > 0 {
			colors, _ := paint.ParseList(b.Background)
			if err := w.SetBadgeBackground(colors); err != nil {
				return nil, err
			}
		}
	}

	if ch := cfg.Channel; ch.Enabled {
		pos, _ := profile.ParseChannelPosition(ch.Position)
		img, err := load(ch.Image)
		if err != nil {
			return nil, err
		}
		if err := w.AddChannel(pos, img); err != nil {
			return nil, err
		}
	}

	profile.ApplyShape(w, shape, profile.AllLayers)
	profile.ApplyBorder(w, cfg.Widget.BorderWidth, borderColor, profile.AllLayers)
	return w, nil
}

func parseColor(s string, fallback color.NRGBA) color.NRGBA {
	if s == "" {
		return fallback
	}
	c, err := paint.Parse(s)
	if err != nil {
		return fallback
	}
	return c
}
