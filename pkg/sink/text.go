package sink

import (
	"bytes"
	"encoding/xml"

	"github.com/matzehuels/displaypicture/pkg/fonts"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// resolveFont returns the font a layer's text is drawn with, shrunk to the
// layer width when the text asks for it.
func resolveFont(l *view.Layer) (fonts.Font, error) {
	f := l.Text.Font
	if f.Size <= 0 {
		f.Size = fonts.DefaultSize
	}
	if !l.Text.FitWidth {
		return f, nil
	}
	return fonts.ShrinkToWidth(f, l.Text.Value, l.Frame.W)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
