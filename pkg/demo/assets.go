package demo

import (
	"hash/fnv"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	dpio "github.com/matzehuels/displaypicture/pkg/io"
	"github.com/matzehuels/displaypicture/pkg/paint"
)

// Assets resolves demo image names such as "ross" or "twitter".
type Assets interface {
	Load(name string) (image.Image, error)
}

// assetExtensions are tried in order when looking up a name in a directory.
var assetExtensions = []string{".png", ".jpg", ".jpeg"}

// DirAssets loads images from Dir/<name>.png, .jpg or .jpeg.
type DirAssets struct {
	Dir string
}

// Load implements Assets. A name with no matching file fails with INVALID_INPUT.
func (d DirAssets) Load(name string) (image.Image, error) {
	for _, ext := range assetExtensions {
		path := filepath.Join(d.Dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := dpio.LoadImage(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "demo asset %q", name)
		}
		return img, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "demo asset %q not found in %s", name, d.Dir)
}

// channelColors are the brand tints used for generated channel icons.
var channelColors = map[string]string{
	"linkedin":   "#0077b5",
	"facebook":   "#3b5998",
	"instagram":  "#c13584",
	"twitter":    "#1da1f2",
	"soundcloud": "#ff5500",
}

// PlaceholderAssets draws stand-in images, so the demo runs without any
// files. Known channel names get a tinted tile with their initial letter;
// every other name gets a portrait silhouette on a color derived from the name.
type PlaceholderAssets struct {
	// Size is the side length in pixels. Zero means 256.
	Size int
}

// Load implements Assets.
func (p PlaceholderAssets) Load(name string) (image.Image, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "demo asset name cannot be empty")
	}
	size := p.Size
	if size <= 0 {
		size = 256
	}
	if hex, ok := channelColors[name]; ok {
		tint, err := paint.Parse(hex)
		if err != nil {
			return nil, err
		}
		return channelTile(name, tint, size)
	}
	return portrait(name, size), nil
}

func channelTile(name string, tint color.NRGBA, size int) (image.Image, error) {
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetColor(tint)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	face, err := fonts.Face(fonts.Font{Family: fonts.FamilyBold, Size: s * 0.6}, 1)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(paint.White)
	dc.DrawStringAnchored(strings.ToUpper(name[:1]), s/2, fonts.Baseline(face, s/2), 0.5, 0)
	return dc.Image(), nil
}

func portrait(name string, size int) image.Image {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	top := paint.DemoColors[int(sum%uint32(len(paint.DemoColors)))]
	bottom := paint.Blend(top, paint.Black, 0.35)

	s := float64(size)
	dc := gg.NewContext(size, size)
	grad := gg.NewLinearGradient(0, 0, 0, s)
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	// Head and shoulders.
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 200})
	dc.DrawCircle(s/2, s*0.38, s*0.18)
	dc.Fill()
	dc.DrawEllipse(s/2, s*0.95, s*0.36, s*0.3)
	dc.Fill()
	return dc.Image()
}
