// Package sink provides output format renderers for widget layer trees.
//
// # Overview
//
// A "sink" transforms a [view.Layer] tree into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics with clip paths and gradients
//   - PNG: Raster image output drawn natively with gg
//   - PDF: Print-ready output (requires rsvg-convert)
//   - JSON: Layer tree export for external tools
//
// # SVG Output
//
// [RenderSVG] emits one nested group per layer. Rounded corners become clip
// paths, gradient fills become vertical linear gradients, images are
// embedded as base64 PNG data and borders are stroked inside the bounds:
//
//	svg, err := sink.RenderSVG(w.Layer(), sink.WithIDPrefix(w.ID()))
//
// Use [WithIDPrefix] when several widgets share one document.
//
// # PNG Output
//
// [RenderPNG] rasterizes the tree directly, without an external converter.
// [RenderImage] returns the bitmap for callers that want to post-process it:
//
//	png, err := sink.RenderPNG(w.Layer(), sink.WithScale(3))
//
// # PDF Output
//
// [RenderPDF] renders SVG first, then converts it with rsvg-convert.
// This requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Output
//
// [RenderJSON] exports frames, radii, borders, fills, text and image sizes,
// which is convenient for snapshot checks and external layout tools.
//
// [view.Layer]: github.com/matzehuels/displaypicture/pkg/view.Layer
package sink

import "slices"

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported formats in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// IsValidFormat reports whether format is supported.
func IsValidFormat(format string) bool { return slices.Contains(Formats, format) }
