// Package profile implements the profile picture widget.
//
// A [Widget] shows either a photo or a thumbnail generated from a display
// name's initials. Two optional overlays sit on top of it: a badge with a
// numeric counter in one of the top corners, and a channel icon in one of the
// bottom corners. Every element can be square or circular, bordered and
// filled with a solid color or a gradient.
//
// # Fan-out
//
// Styling the widget only touches its primary layer. Overlays keep their own
// shape and border. To style several elements at once, use [ApplyShape] and
// [ApplyBorder] with a [LayerSet]:
//
//	w.AddBadge(profile.BadgeTopRight, 3)
//	profile.ApplyShape(w, view.ShapeCircle, profile.AllLayers)
//
// # Rendering
//
// The widget keeps a retained [view.Layer] tree up to date on every call.
// Pass [Widget.Layer] to package sink to produce SVG, PNG, PDF or JSON.
//
// A Widget is not safe for concurrent use.
package profile
