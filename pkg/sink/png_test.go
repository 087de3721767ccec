package sink

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/view"
)

func TestRenderImageSize(t *testing.T) {
	root, _ := testTree(t)

	tests := []struct {
		scale float64
		want  int
	}{
		{0, 200},
		{1, 100},
		{3, 300},
	}
	for _, tt := range tests {
		img, err := RenderImage(root, tt.scale)
		if err != nil {
			t.Fatalf("RenderImage(%v) error: %v", tt.scale, err)
		}
		if got := img.Bounds().Dx(); got != tt.want {
			t.Errorf("RenderImage(%v) width = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestRenderImageLayers(t *testing.T) {
	root, _ := testTree(t)
	img, err := RenderImage(root, 1)
	if err != nil {
		t.Fatal(err)
	}

	if got := at(img, 10, 50); !near(got, paint.Blue) {
		t.Errorf("panel pixel = %v, want blue", got)
	}
	if got := at(img, 90, 10); !near(got, paint.Red) {
		t.Errorf("badge pixel = %v, want red", got)
	}
}

func TestRenderImageCornerRadius(t *testing.T) {
	root, badge := testTree(t)
	panel := root.Children()[0]
	view.ApplyShape(panel, view.ShapeCircle)
	view.ApplyShape(badge, view.ShapeCircle)

	img, err := RenderImage(root, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 1, 99); got.A != 0 {
		t.Errorf("circle corner = %v, want transparent", got)
	}
	if got := at(img, 50, 50); !near(got, paint.Blue) {
		t.Errorf("circle center = %v, want blue", got)
	}
	// Neither the badge nor the panel paints the square corner of a circle.
	if got := at(img, 99, 0); got.A != 0 {
		t.Errorf("badge corner = %v, want transparent", got)
	}
}

func TestRenderImageClipStaysInLayer(t *testing.T) {
	root, _ := testTree(t)
	panel := root.Children()[0]
	panel.ClipsToBounds = true
	view.ApplyShape(panel, view.ShapeCircle)

	// A sibling drawn after two clipped layers lies outside both clips.
	tag := view.NewLayer("tag", geom.R(0, 80, 20, 20))
	if err := view.ApplyBackground(tag, []color.NRGBA{paint.Green}); err != nil {
		t.Fatal(err)
	}
	root.AddChild(tag)

	img, err := RenderImage(root, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 99, 0); !near(got, paint.Red) {
		t.Errorf("badge corner = %v, want red outside the circle panel", got)
	}
	if got := at(img, 1, 99); !near(got, paint.Green) {
		t.Errorf("tag corner = %v, want green outside the panel and badge clips", got)
	}
	if got := at(img, 50, 50); !near(got, paint.Blue) {
		t.Errorf("panel center = %v, want blue", got)
	}
}

func TestRenderImageBorderInside(t *testing.T) {
	l := view.NewLayer("box", geom.R(0, 0, 50, 50))
	if err := view.ApplyBackground(l, []color.NRGBA{paint.White}); err != nil {
		t.Fatal(err)
	}
	view.ApplyBorder(l, 4, paint.Red)

	img, err := RenderImage(l, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 1, 25); !near(got, paint.Red) {
		t.Errorf("border pixel = %v, want red", got)
	}
	if got := at(img, 25, 25); !near(got, paint.White) {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestRenderImageClipsChildren(t *testing.T) {
	parent := view.NewLayer("clip", geom.R(0, 0, 40, 40))
	parent.ClipsToBounds = true
	view.ApplyShape(parent, view.ShapeCircle)

	child := view.NewLayer("photo", parent.Bounds())
	child.Image = solidImage(10, 20, paint.Green)
	parent.AddChild(child)

	img, err := RenderImage(parent, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 20, 20); !near(got, paint.Green) {
		t.Errorf("center = %v, want green", got)
	}
	if got := at(img, 0, 0); got.A != 0 {
		t.Errorf("clipped corner = %v, want transparent", got)
	}
	// Aspect fill covers the full width even though the source is narrow.
	if got := at(img, 20, 2); !near(got, paint.Green) {
		t.Errorf("top center = %v, want green from aspect fill", got)
	}
}

func TestRenderImageAspectFit(t *testing.T) {
	l := view.NewLayer("fit", geom.R(0, 0, 40, 40))
	l.Image = solidImage(40, 10, paint.Green)
	l.ContentMode = view.ContentAspectFit

	img, err := RenderImage(l, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 20, 20); !near(got, paint.Green) {
		t.Errorf("center = %v, want green", got)
	}
	if got := at(img, 20, 2); got.A != 0 {
		t.Errorf("letterbox = %v, want transparent", got)
	}
}

func TestRenderImageText(t *testing.T) {
	l := textLayer("12")
	if err := view.ApplyBackground(l, []color.NRGBA{paint.White}); err != nil {
		t.Fatal(err)
	}

	img, err := RenderImage(l, 2)
	if err != nil {
		t.Fatal(err)
	}
	dark := false
	b := img.Bounds()
	for y := 0; y < b.Dy() && !dark; y++ {
		for x := 0; x < b.Dx(); x++ {
			if c := at(img, x, y); c.R < 80 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("no text pixels drawn")
	}
}

func TestRenderImageErrors(t *testing.T) {
	if _, err := RenderImage(nil, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderImage(nil) error = %v, want INVALID_INPUT", err)
	}
	empty := view.NewLayer("empty", geom.R(0, 0, 0, 10))
	if _, err := RenderImage(empty, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderImage(empty) error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderPNG(t *testing.T) {
	root, _ := testTree(t)

	data, err := RenderPNG(root, WithScale(1.5))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 150 {
		t.Errorf("width = %d, want 150", got)
	}
}
