package sink

import (
	"image"
	"image/color"
	"testing"

	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// testTree builds a 100x100 root with a blue panel and a 20x20 red badge
// in the top right corner.
func testTree(t *testing.T) (*view.Layer, *view.Layer) {
	t.Helper()
	root := view.NewLayer("profile", geom.R(0, 0, 100, 100))

	panel := view.NewLayer("picture", geom.R(0, 0, 100, 100))
	if err := view.ApplyBackground(panel, []color.NRGBA{paint.Blue}); err != nil {
		t.Fatal(err)
	}
	root.AddChild(panel)

	badge := view.NewLayer("badge", geom.R(80, 0, 20, 20))
	badge.ClipsToBounds = true
	if err := view.ApplyBackground(badge, []color.NRGBA{paint.Red}); err != nil {
		t.Fatal(err)
	}
	root.AddChild(badge)
	return root, badge
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func at(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 8 && d(a.G, b.G) <= 8 && d(a.B, b.B) <= 8 && d(a.A, b.A) <= 8
}

func textLayer(value string) *view.Layer {
	l := view.NewLayer("label", geom.R(0, 0, 40, 40))
	l.Text = &view.Text{Value: value, Font: fonts.Font{Size: 30}, Color: paint.Black, FitWidth: true}
	return l
}
