package config

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/profile"
)

const fullConfig = `
[widget]
width = 120
height = 120
shape = "circle"
border_width = 2.0
border_color = "#ff0000"
background = ["#a9a9a9", "#ffffff"]
badge_size_ratio = 0.3
channel_size_ratio = 0.2

[profile]
name = "Ross Geller"
font = { family = "bold", size = 0 }
font_color = "white"

[badge]
enabled = true
position = "top-left"
count = 3
background = ["red"]
font_color = "#ffffff"

[channel]
enabled = true
position = "bottom-left"
image = "twitter.png"
`

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(fullConfig))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if cfg.Widget.Width != 120 || cfg.Widget.Shape != "circle" {
		t.Errorf("Widget = %+v", cfg.Widget)
	}
	if len(cfg.Widget.Background) != 2 {
		t.Errorf("Background = %v, want 2 colors", cfg.Widget.Background)
	}
	if cfg.Profile.Font == nil || cfg.Profile.Font.Family != fonts.FamilyBold {
		t.Errorf("Profile.Font = %v, want bold", cfg.Profile.Font)
	}
	if !cfg.Badge.Enabled || cfg.Badge.Count != 3 || cfg.Badge.Position != "top-left" {
		t.Errorf("Badge = %+v", cfg.Badge)
	}
	if cfg.Channel.Image != "twitter.png" {
		t.Errorf("Channel.Image = %q", cfg.Channel.Image)
	}
}

func TestDecodeKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("[profile]\nname = \"Prada\"\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Widget.Width != DefaultWidth || cfg.Widget.BadgeSizeRatio != 0.25 {
		t.Errorf("defaults lost: %+v", cfg.Widget)
	}
	if cfg.Badge.Position != "top-right" || cfg.Channel.Position != "bottom-right" {
		t.Errorf("default positions lost: %q %q", cfg.Badge.Position, cfg.Channel.Position)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"syntax", "[widget\n", "parse toml"},
		{"unknown key", "[widget]\nwidht = 10\n", "widget.widht"},
		{"unknown table", "[bagde]\nenabled = true\n", "bagde"},
		{"bad shape", "[widget]\nshape = \"hexagon\"\n", "widget.shape"},
		{"bad color", "[widget]\nborder_color = \"#zzz\"\n", "widget.border_color"},
		{"empty background", "[widget]\nbackground = []\n", "widget.background"},
		{"bad ratio", "[widget]\nbadge_size_ratio = 1.5\n", "badge_size_ratio"},
		{"negative border", "[widget]\nborder_width = -1.0\n", "border_width"},
		{"size too large", "[widget]\nwidth = 100000\n", "too large"},
		{"bad badge position", "[badge]\nposition = \"bottom-left\"\n", "badge.position"},
		{"bad channel position", "[channel]\nposition = \"top-left\"\n", "channel.position"},
		{"negative count", "[badge]\ncount = -2\n", "badge.count"},
		{"channel without image", "[channel]\nenabled = true\n", "channel.image"},
		{"bad font", "[profile]\nfont = { family = \"comic\" }\n", "profile.font"},
		{"blank name", "[profile]\nname = \"   \"\n", "profile.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Decode() error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Decode() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.toml")
	if err := os.WriteFile(path, []byte(fullConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Profile.Name != "Ross Geller" {
		t.Errorf("Profile.Name = %q", cfg.Profile.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func fakeLoader(t *testing.T) (ImageLoader, *[]string) {
	t.Helper()
	var seen []string
	return func(path string) (image.Image, error) {
		seen = append(seen, path)
		return image.NewRGBA(image.Rect(0, 0, 16, 16)), nil
	}, &seen
}

func TestBuild(t *testing.T) {
	cfg, err := Decode(strings.NewReader(fullConfig))
	if err != nil {
		t.Fatal(err)
	}
	load, seen := fakeLoader(t)

	w, err := Build(cfg, load, profile.WithID("cfg"))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if w.ID() != "cfg" {
		t.Errorf("ID() = %q, want cfg", w.ID())
	}
	if w.Frame() != geom.R(0, 0, 120, 120) {
		t.Errorf("Frame() = %v", w.Frame())
	}
	if name, ok := w.Source().Name(); !ok || name != "Ross Geller" {
		t.Errorf("Source() = %q, %v", name, ok)
	}
	if width, c := w.Border(); width != 2 || c != paint.Red {
		t.Errorf("Border() = %v %v", width, c)
	}
	if w.Primary().CornerRadius != 60 {
		t.Errorf("primary radius = %v, want 60", w.Primary().CornerRadius)
	}

	b, ok := w.Badge()
	if !ok {
		t.Fatal("badge missing")
	}
	if b.Frame() != geom.R(0, 0, 36, 36) {
		t.Errorf("badge frame = %v", b.Frame())
	}
	if b.Count() != 3 || b.Layer().Background.Color() != paint.Red {
		t.Errorf("badge count/fill = %d %v", b.Count(), b.Layer().Background.Color())
	}
	if b.Layer().CornerRadius != 18 || b.Layer().BorderWidth != 2 {
		t.Errorf("badge not fanned out: radius=%v border=%v", b.Layer().CornerRadius, b.Layer().BorderWidth)
	}
	if label, _ := b.Label(); label.Text.Color != paint.White {
		t.Errorf("badge text color = %v, want white", label.Text.Color)
	}

	c, ok := w.Channel()
	if !ok {
		t.Fatal("channel missing")
	}
	if c.Frame() != geom.R(0, 96, 24, 24) {
		t.Errorf("channel frame = %v", c.Frame())
	}
	if len(*seen) != 1 || (*seen)[0] != "twitter.png" {
		t.Errorf("loader calls = %v", *seen)
	}
}

func TestBuildPhoto(t *testing.T) {
	cfg := Default()
	cfg.Profile.Name = "Ross Geller"
	cfg.Profile.Photo = "ross.png"
	load, seen := fakeLoader(t)

	w, err := Build(cfg, load)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if _, ok := w.Source().Photo(); !ok {
		t.Error("photo should win over name")
	}
	if len(*seen) != 1 || (*seen)[0] != "ross.png" {
		t.Errorf("loader calls = %v", *seen)
	}
}

func TestBuildMissingImage(t *testing.T) {
	cfg := Default()
	cfg.Channel.Enabled = true
	cfg.Channel.Image = "nope.png"

	_, err := Build(cfg, FileLoader(t.TempDir()))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Build() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFileLoaderResolvesRelative(t *testing.T) {
	dir := t.TempDir()
	load := FileLoader(dir)
	_, err := load("icon.png")
	if err == nil || !strings.Contains(err.Error(), filepath.Join(dir, "icon.png")) {
		t.Errorf("FileLoader error = %v, want it to name the resolved path", err)
	}
}

func TestExampleConfigs(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example configs")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if _, err := Build(cfg, FileLoader(filepath.Dir(path))); err != nil {
				t.Errorf("Build() error: %v", err)
			}
		})
	}
}
