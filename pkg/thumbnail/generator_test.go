package thumbnail

import (
	"image"
	"image/color"
	"testing"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/paint"
)

func TestLabelLayout(t *testing.T) {
	frame := geom.R(10, 20, 200, 100)

	l, err := LabelLayout("RG", frame, nil)
	if err != nil {
		t.Fatalf("LabelLayout() error: %v", err)
	}

	if l.Panel != frame.Bounds() {
		t.Errorf("Panel = %v, want %v", l.Panel, frame.Bounds())
	}
	if l.Label.W > frame.W*0.8+1e-9 {
		t.Errorf("Label.W = %v, want <= %v", l.Label.W, frame.W*0.8)
	}
	if l.Label.H > frame.H+1e-9 {
		t.Errorf("Label.H = %v, want <= %v", l.Label.H, frame.H)
	}
	if got, want := l.Label.MidX(), l.Panel.MidX(); !near(got, want) {
		t.Errorf("Label.MidX() = %v, want %v", got, want)
	}
	if got, want := l.Label.MidY(), l.Panel.MidY(); !near(got, want) {
		t.Errorf("Label.MidY() = %v, want %v", got, want)
	}
	if l.Font.Size <= 0 || l.Font.Size > maxFontSize {
		t.Errorf("Font.Size = %v, want in (0, %v]", l.Font.Size, maxFontSize)
	}
	if l.Font.Family != fonts.FamilyRegular {
		t.Errorf("Font.Family = %q, want %q", l.Font.Family, fonts.FamilyRegular)
	}
}

func TestLabelLayoutFitsWidth(t *testing.T) {
	frame := geom.R(0, 0, 100, 100)
	l, err := LabelLayout("WW", frame, nil)
	if err != nil {
		t.Fatalf("LabelLayout() error: %v", err)
	}
	m, err := fonts.Measure(l.Font, "WW")
	if err != nil {
		t.Fatalf("Measure() error: %v", err)
	}
	if limit := frame.W * labelMaxWidthRatio / labelGrowth; m.W > limit+0.5 {
		t.Errorf("fitted text width = %v, want <= %v", m.W, limit)
	}
}

func TestLabelLayoutCapsFontSize(t *testing.T) {
	l, err := LabelLayout("i", geom.R(0, 0, 4000, 4000), nil)
	if err != nil {
		t.Fatalf("LabelLayout() error: %v", err)
	}
	if l.Font.Size != maxFontSize {
		t.Errorf("Font.Size = %v, want %v", l.Font.Size, maxFontSize)
	}
}

func TestLabelLayoutUserFont(t *testing.T) {
	frame := geom.R(0, 0, 200, 200)

	tests := []struct {
		name       string
		font       fonts.Font
		wantFamily string
		wantFitted bool
		wantSize   float64
	}{
		{"explicit size replaces fitted", fonts.Font{Family: fonts.FamilyBold, Size: 30}, fonts.FamilyBold, false, 30},
		{"zero size keeps fitted", fonts.Font{Family: fonts.FamilyMono}, fonts.FamilyMono, true, 0},
	}

	fitted, err := LabelLayout("CB", frame, nil)
	if err != nil {
		t.Fatalf("LabelLayout() error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := LabelLayout("CB", frame, &tt.font)
			if err != nil {
				t.Fatalf("LabelLayout() error: %v", err)
			}
			if l.Font.Family != tt.wantFamily {
				t.Errorf("Font.Family = %q, want %q", l.Font.Family, tt.wantFamily)
			}
			if tt.wantFitted {
				if l.Font.Size <= 0 || l.Font.Size > fitted.Font.Size*2 {
					t.Errorf("Font.Size = %v, want a fitted size", l.Font.Size)
				}
			} else if l.Font.Size != tt.wantSize {
				t.Errorf("Font.Size = %v, want %v", l.Font.Size, tt.wantSize)
			}
		})
	}
}

func TestLabelLayoutEmptyFrame(t *testing.T) {
	_, err := LabelLayout("RG", geom.R(0, 0, 0, 10), nil)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("LabelLayout() error = %v, want INVALID_INPUT", err)
	}
}

func TestGenerateSize(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		frame geom.Rect
		want  image.Point
	}{
		{"default scale", 0, geom.R(0, 0, 100, 50), image.Pt(200, 100)},
		{"scale 1", 1, geom.R(5, 5, 64, 64), image.Pt(64, 64)},
		{"scale 3", 3, geom.R(0, 0, 10, 20), image.Pt(30, 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []GeneratorOption
			if tt.scale > 0 {
				opts = append(opts, WithScale(tt.scale))
			}
			img, err := NewGenerator(opts...).Generate("Ross Geller", tt.frame, Options{})
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if got := img.Bounds().Size(); got != tt.want {
				t.Errorf("size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateDefaults(t *testing.T) {
	img, err := NewGenerator().Generate("Ross Geller", geom.R(0, 0, 100, 100), Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if got := nrgba(img, 1, 1); !sameColor(got, paint.White) {
		t.Errorf("corner = %v, want white", got)
	}
	if !anyPixel(img, func(c color.NRGBA) bool { return c.R < 100 && c.G < 100 && c.B < 100 }) {
		t.Error("no dark text pixels drawn, want black initials")
	}
}

func TestGenerateSolidBackground(t *testing.T) {
	white := paint.White
	img, err := NewGenerator().Generate("Prada", geom.R(0, 0, 80, 80), Options{
		TextColor:  &white,
		Background: []color.NRGBA{paint.Blue},
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := nrgba(img, 2, 2); !sameColor(got, paint.Blue) {
		t.Errorf("corner = %v, want blue", got)
	}
	if !anyPixel(img, func(c color.NRGBA) bool { return c.R > 200 && c.G > 200 }) {
		t.Error("no white text pixels drawn")
	}
}

func TestGenerateGradientBackground(t *testing.T) {
	img, err := NewGenerator(WithScale(1)).Generate("Monica Geller", geom.R(0, 0, 100, 100), Options{
		Background: []color.NRGBA{paint.Red, paint.Blue},
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	top := nrgba(img, 0, 0)
	bottom := nrgba(img, 0, 99)
	if top.R < 230 || top.B > 25 {
		t.Errorf("top = %v, want close to red", top)
	}
	if bottom.B < 230 || bottom.R > 25 {
		t.Errorf("bottom = %v, want close to blue", bottom)
	}
}

func TestGenerateFreshBitmap(t *testing.T) {
	g := NewGenerator()
	a, err := g.Generate("Ross Geller", geom.R(0, 0, 40, 40), Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := g.Generate("Ross Geller", geom.R(0, 0, 40, 40), Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if a == b {
		t.Error("Generate() returned the same image twice, want a new bitmap per call")
	}
}

func TestRenderLayout(t *testing.T) {
	thumb, err := NewGenerator(WithScale(1)).Render("Phoebe Regina Buffay", geom.R(0, 0, 90, 60), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if thumb.Layout.Initials != "PB" {
		t.Errorf("Layout.Initials = %q, want %q", thumb.Layout.Initials, "PB")
	}
	if got, want := thumb.Image.Bounds().Size(), image.Pt(90, 60); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
	l := thumb.Layout
	if l.Label.MinX() < 0 || l.Label.MaxX() > l.Panel.MaxX() || l.Label.MinY() < 0 || l.Label.MaxY() > l.Panel.MaxY() {
		t.Errorf("label %v outside panel %v", l.Label, l.Panel)
	}
}

func TestGenerateErrors(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name  string
		in    string
		frame geom.Rect
	}{
		{"empty name", "", geom.R(0, 0, 10, 10)},
		{"blank name", "   ", geom.R(0, 0, 10, 10)},
		{"empty frame", "Ross", geom.R(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(tt.in, tt.frame, Options{})
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Generate() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)).(color.NRGBA)
}

func sameColor(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 3 && d(a.G, b.G) <= 3 && d(a.B, b.B) <= 3 && d(a.A, b.A) <= 3
}

func anyPixel(img image.Image, fn func(color.NRGBA) bool) bool {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if fn(nrgba(img, x, y)) {
				return true
			}
		}
	}
	return false
}
