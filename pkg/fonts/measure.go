package fonts

import (
	"golang.org/x/image/font"
)

// Size is a measured text extent in points.
type Size struct {
	W, H float64
}

// Measure returns the advance width and line height of s set in f.
func Measure(f Font, s string) (Size, error) {
	face, err := Face(f, 1)
	if err != nil {
		return Size{}, err
	}
	defer face.Close()

	adv := font.MeasureString(face, s)
	m := face.Metrics()
	return Size{
		W: float64(adv) / 64,
		H: float64(m.Ascent+m.Descent) / 64,
	}, nil
}

// FitSize returns the largest size not above maxSize at which s fits inside
// maxW by maxH. Text extents scale linearly with the point size, so the
// result is computed from a single measurement at a reference size.
func FitSize(f Font, s string, maxW, maxH, maxSize float64) (float64, error) {
	const ref = 100.0
	m, err := Measure(f.WithSize(ref), s)
	if err != nil {
		return 0, err
	}
	size := maxSize
	if m.W > 0 {
		size = min(size, ref*maxW/m.W)
	}
	if m.H > 0 {
		size = min(size, ref*maxH/m.H)
	}
	return max(0, size), nil
}

// ShrinkToWidth returns f unchanged when s fits in maxW, otherwise f at the
// size that makes s exactly maxW wide. It never grows the font.
func ShrinkToWidth(f Font, s string, maxW float64) (Font, error) {
	if f.Size <= 0 {
		f.Size = DefaultSize
	}
	m, err := Measure(f, s)
	if err != nil {
		return f, err
	}
	if m.W <= maxW || m.W == 0 {
		return f, nil
	}
	return f.WithSize(f.Size * maxW / m.W), nil
}

// Baseline returns the baseline that vertically centers a line set in face
// on midY. The line box spans the ascent plus the descent.
func Baseline(face font.Face, midY float64) float64 {
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	return midY + (ascent-descent)/2
}
