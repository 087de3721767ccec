package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := R(10, 20, 100, 50)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MinX", r.MinX(), 10},
		{"MaxX", r.MaxX(), 110},
		{"MinY", r.MinY(), 20},
		{"MaxY", r.MaxY(), 70},
		{"MidX", r.MidX(), 60},
		{"MidY", r.MidY(), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRectBounds(t *testing.T) {
	got := R(30, 40, 200, 100).Bounds()
	want := R(0, 0, 200, 100)
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		d    float64
		want Rect
	}{
		{"shrinks", R(0, 0, 100, 50), 5, R(5, 5, 90, 40)},
		{"negative grows", R(10, 10, 10, 10), -2, R(8, 8, 14, 14)},
		{"clamps at zero", R(0, 0, 4, 4), 10, R(10, 10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.d); got != tt.want {
				t.Errorf("Inset(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRectCenteredIn(t *testing.T) {
	got := R(0, 0, 20, 10).CenteredIn(R(0, 0, 100, 100))
	want := R(40, 45, 20, 10)
	if got != want {
		t.Errorf("CenteredIn() = %v, want %v", got, want)
	}
}

func TestRectEmpty(t *testing.T) {
	if !R(0, 0, 0, 10).Empty() {
		t.Error("zero width rect should be empty")
	}
	if R(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect should not be empty")
	}
}
