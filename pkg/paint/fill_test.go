package paint

import (
	"testing"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

func TestNewFill(t *testing.T) {
	if _, err := NewFill(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NewFill() error = %v, want INVALID_INPUT", err)
	}

	f, err := NewFill(Red)
	if err != nil {
		t.Fatalf("NewFill(red) error = %v", err)
	}
	if f.Kind() != KindSolid {
		t.Errorf("Kind() = %v, want solid", f.Kind())
	}
	if f.Color() != Red {
		t.Errorf("Color() = %v, want red", f.Color())
	}
}

func TestFillGradient(t *testing.T) {
	f, err := NewFill(Red, Blue)
	if err != nil {
		t.Fatalf("NewFill() error = %v", err)
	}
	if f.Kind() != KindGradient {
		t.Fatalf("Kind() = %v, want gradient", f.Kind())
	}

	stops := f.Stops()
	if len(stops) != 2 {
		t.Fatalf("len(Stops()) = %d, want 2", len(stops))
	}
	if stops[0].Offset != 0 || stops[0].Color != Red {
		t.Errorf("Stops()[0] = %+v, want {0 red}", stops[0])
	}
	if stops[1].Offset != 1 || stops[1].Color != Blue {
		t.Errorf("Stops()[1] = %+v, want {1 blue}", stops[1])
	}
}

func TestFillStopsEvenlySpaced(t *testing.T) {
	f, _ := NewFill(Red, Green, Blue, White, Black)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, s := range f.Stops() {
		if s.Offset != want[i] {
			t.Errorf("Stops()[%d].Offset = %v, want %v", i, s.Offset, want[i])
		}
	}
}

func TestFillAt(t *testing.T) {
	f, _ := NewFill(Black, White, Black)

	tests := []struct {
		name string
		t    float64
		want uint8
	}{
		{"start", 0, 0x00},
		{"middle stop", 0.5, 0xff},
		{"end", 1, 0x00},
		{"below range", -1, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.At(tt.t).R; got != tt.want {
				t.Errorf("At(%v).R = %#x, want %#x", tt.t, got, tt.want)
			}
		})
	}

	if got := Solid(Red).At(0.7); got != Red {
		t.Errorf("Solid.At() = %v, want red", got)
	}
}

func TestFillCopiesColors(t *testing.T) {
	in := []string{"red", "blue"}
	parsed, _ := ParseList(in)
	f, _ := NewFill(parsed...)
	parsed[0] = White
	if f.Color() != Red {
		t.Error("NewFill must copy its input")
	}

	out := f.Colors()
	out[0] = White
	if f.Color() != Red {
		t.Error("Colors() must return a copy")
	}
}

func TestFillEqual(t *testing.T) {
	a, _ := NewFill(Red, Blue)
	b, _ := NewFill(Red, Blue)
	c, _ := NewFill(Blue, Red)
	if !a.Equal(b) {
		t.Error("identical fills should be equal")
	}
	if a.Equal(c) {
		t.Error("order matters for equality")
	}
}
