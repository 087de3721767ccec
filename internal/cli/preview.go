package cli

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/displaypicture/pkg/paint"
)

// previewAlphaCutoff is the alpha below which a pixel is drawn as terminal background.
const previewAlphaCutoff = 128

// previewStyles caches one lipgloss style per foreground/background pair.
type previewStyles map[[2]string]lipgloss.Style

func (s previewStyles) get(fg, bg string) lipgloss.Style {
	key := [2]string{fg, bg}
	if st, ok := s[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	s[key] = st
	return st
}

// renderPreview draws img cols characters wide. Each character cell shows
// two vertically stacked pixels with an upper half block, so the preview
// keeps the image's aspect ratio on terminals with 1:2 cells.
func renderPreview(img image.Image, cols int) string {
	if img == nil || cols <= 0 || img.Bounds().Empty() {
		return ""
	}
	b := img.Bounds()
	pixW := cols
	pixH := max(2, cols*b.Dy()/b.Dx())
	if pixH%2 == 1 {
		pixH++
	}
	small := imaging.Resize(img, pixW, pixH, imaging.Box)

	styles := previewStyles{}
	var out strings.Builder
	for y := 0; y < pixH; y += 2 {
		for x := 0; x < pixW; x++ {
			top := hexOf(small.NRGBAAt(x, y))
			bot := hexOf(small.NRGBAAt(x, y+1))
			switch {
			case top == "" && bot == "":
				out.WriteString(" ")
			case top == bot:
				out.WriteString(styles.get(top, "").Render("█"))
			case bot == "":
				out.WriteString(styles.get(top, "").Render("▀"))
			case top == "":
				out.WriteString(styles.get(bot, "").Render("▄"))
			default:
				out.WriteString(styles.get(top, bot).Render("▀"))
			}
		}
		if y+2 < pixH {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// hexOf returns c as #rrggbb, or "" when it is mostly transparent.
func hexOf(c color.NRGBA) string {
	if c.A < previewAlphaCutoff {
		return ""
	}
	return paint.Hex(c)
}
