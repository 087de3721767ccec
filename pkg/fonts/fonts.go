// Package fonts provides the embedded fonts used to draw initials and badge
// counts, plus text measurement helpers.
//
// The fonts are the Go font family from golang.org/x/image, embedded in the
// binary so rendering works without any system font lookup.
package fonts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

// Font families.
const (
	FamilyRegular = "regular"
	FamilyBold    = "bold"
	FamilyMono    = "mono"
)

// DefaultSize matches the platform label default of 17pt.
const DefaultSize = 17.0

// Font names a family and a point size. A zero Size means "fit automatically"
// wherever a font is used for fitted text.
type Font struct {
	Family string  `toml:"family" json:"family"`
	Size   float64 `toml:"size" json:"size"`
}

// Default returns the regular family at DefaultSize.
func Default() Font { return Font{Family: FamilyRegular, Size: DefaultSize} }

// WithSize returns a copy of f with a different size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// String formats f as "family/size".
func (f Font) String() string {
	return fmt.Sprintf("%s/%g", f.family(), f.Size)
}

func (f Font) family() string {
	if f.Family == "" {
		return FamilyRegular
	}
	return strings.ToLower(f.Family)
}

// SVGFamily returns a CSS font-family list matching the embedded family.
func (f Font) SVGFamily() string {
	switch f.family() {
	case FamilyMono:
		return "'Go Mono', monospace"
	default:
		return "'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif"
	}
}

// SVGWeight returns the CSS font-weight for the family.
func (f Font) SVGWeight() string {
	if f.family() == FamilyBold {
		return "bold"
	}
	return "normal"
}

// Validate checks that the family is known and the size is not negative.
func (f Font) Validate() error {
	if _, ok := sources[f.family()]; !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown font family %q (must be regular, bold or mono)", f.Family)
	}
	if f.Size < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "font size must be >= 0, got %v", f.Size)
	}
	return nil
}

var sources = map[string][]byte{
	FamilyRegular: goregular.TTF,
	FamilyBold:    gobold.TTF,
	FamilyMono:    gomono.TTF,
}

// Parsed fonts (computed once per family on first access).
var (
	parsedMu sync.Mutex
	parsed   = map[string]*truetype.Font{}
)

func load(family string) (*truetype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if f, ok := parsed[family]; ok {
		return f, nil
	}
	src, ok := sources[family]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown font family %q", family)
	}
	f, err := truetype.Parse(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font %s", family)
	}
	parsed[family] = f
	return f, nil
}

// Face returns a font face for f rendered at size*scale pixels per em.
// Faces are not safe for concurrent use; callers own the returned face.
func Face(f Font, scale float64) (font.Face, error) {
	tt, err := load(f.family())
	if err != nil {
		return nil, err
	}
	size := f.Size
	if size <= 0 {
		size = DefaultSize
	}
	if scale <= 0 {
		scale = 1
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
