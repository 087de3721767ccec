// Package pkg provides the libraries behind displaypicture.
//
// # Overview
//
// A profile picture widget shows either a photo or an initials thumbnail and
// can carry two overlays: a counter badge in a top corner and a channel icon
// in a bottom corner. Every element can be square or circular, bordered, and
// filled with a solid color or a vertical gradient.
//
// # Architecture
//
// Leaf packages first:
//
//	[geom], [paint], [fonts]     rectangles, colors and fills, embedded fonts
//	         ↓
//	[view]                       retained layer tree with shape, border and fill stylers
//	         ↓
//	[thumbnail]                  initials and flattened label bitmaps
//	         ↓
//	[profile]                    the widget, its badge and channel sub-elements
//	         ↓
//	[sink]                       SVG, PNG, PDF and JSON exports of a layer tree
//
// [config] builds a widget from TOML, [demo] drives one from a settings
// screen, [io] loads and writes files, and [observability] exposes hooks for
// widget and render events.
//
// # Quick Start
//
//	w, _ := profile.New(geom.R(0, 0, 200, 200))
//	_ = w.SetDisplayName("Ross Geller")
//	w.AddBadge(profile.BadgeTopRight, 3)
//	profile.ApplyShape(w, view.ShapeCircle, profile.AllLayers)
//	png, _ := sink.RenderPNG(w.Layer())
//
// [geom]: github.com/matzehuels/displaypicture/pkg/geom
// [paint]: github.com/matzehuels/displaypicture/pkg/paint
// [fonts]: github.com/matzehuels/displaypicture/pkg/fonts
// [view]: github.com/matzehuels/displaypicture/pkg/view
// [thumbnail]: github.com/matzehuels/displaypicture/pkg/thumbnail
// [profile]: github.com/matzehuels/displaypicture/pkg/profile
// [sink]: github.com/matzehuels/displaypicture/pkg/sink
// [config]: github.com/matzehuels/displaypicture/pkg/config
// [demo]: github.com/matzehuels/displaypicture/pkg/demo
// [io]: github.com/matzehuels/displaypicture/pkg/io
// [observability]: github.com/matzehuels/displaypicture/pkg/observability
package pkg
