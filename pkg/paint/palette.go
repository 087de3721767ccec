package paint

import "image/color"

// Palette colors. Values follow the platform's named system colors.
var (
	Black     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red       = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Orange    = color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
	Yellow    = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	Green     = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Blue      = color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Cyan      = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	Magenta   = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	Purple    = color.NRGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	Brown     = color.NRGBA{R: 0x99, G: 0x66, B: 0x33, A: 0xff}
	Gray      = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	DarkGray  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	LightGray = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

var named = map[string]color.NRGBA{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"orange":      Orange,
	"yellow":      Yellow,
	"green":       Green,
	"blue":        Blue,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"purple":      Purple,
	"brown":       Brown,
	"gray":        Gray,
	"darkgray":    DarkGray,
	"lightgray":   LightGray,
	"clear":       Clear,
	"transparent": Clear,
}

// DemoColors is the ten-color cycle used by the demo settings screen.
var DemoColors = []color.NRGBA{
	Red, Orange, Yellow, Blue, Green, DarkGray, White, Brown, Cyan, LightGray,
}
