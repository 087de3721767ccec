package sink

import (
	"encoding/json"

	"github.com/matzehuels/displaypicture/pkg/errors"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id     string
	indent bool
}

// WithJSONID records the widget instance ID in the output.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	ID     string    `json:"id,omitempty"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Root   jsonLayer `json:"root"`
}

type jsonLayer struct {
	Name         string      `json:"name"`
	X            float64     `json:"x"`
	Y            float64     `json:"y"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	CornerRadius float64     `json:"corner_radius,omitempty"`
	Clips        bool        `json:"clips,omitempty"`
	Border       *jsonBorder `json:"border,omitempty"`
	Fill         *jsonFill   `json:"fill,omitempty"`
	Image        *jsonImage  `json:"image,omitempty"`
	Text         *jsonText   `json:"text,omitempty"`
	Children     []jsonLayer `json:"children,omitempty"`
}

type jsonBorder struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type jsonFill struct {
	Kind   string   `json:"kind"`
	Colors []string `json:"colors"`
}

type jsonImage struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mode   string `json:"mode"`
}

type jsonText struct {
	Value    string  `json:"value"`
	Font     string  `json:"font"`
	Size     float64 `json:"size"`
	Color    string  `json:"color"`
	FitWidth bool    `json:"fit_width,omitempty"`
}

// RenderJSON exports the layer tree as JSON.
func RenderJSON(root *view.Layer, opts ...JSONOption) ([]byte, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:     r.id,
		Width:  root.Frame.W,
		Height: root.Frame.H,
		Root:   buildJSONLayer(root),
	}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func buildJSONLayer(l *view.Layer) jsonLayer {
	jl := jsonLayer{
		Name:         l.Name,
		X:            l.Frame.X,
		Y:            l.Frame.Y,
		Width:        l.Frame.W,
		Height:       l.Frame.H,
		CornerRadius: l.CornerRadius,
		Clips:        l.ClipsToBounds,
	}
	if l.HasBorder() {
		jl.Border = &jsonBorder{Width: l.BorderWidth, Color: paint.Hex(l.BorderColor)}
	}
	if l.Background != nil {
		jf := &jsonFill{Kind: l.Background.Kind().String()}
		for _, c := range l.Background.Colors() {
			jf.Colors = append(jf.Colors, paint.Hex(c))
		}
		jl.Fill = jf
	}
	if l.Image != nil {
		mode := "aspect-fill"
		if l.ContentMode == view.ContentAspectFit {
			mode = "aspect-fit"
		}
		b := l.Image.Bounds()
		jl.Image = &jsonImage{Width: b.Dx(), Height: b.Dy(), Mode: mode}
	}
	if l.Text != nil {
		if f, err := resolveFont(l); err == nil {
			jl.Text = &jsonText{
				Value:    l.Text.Value,
				Font:     f.Family,
				Size:     f.Size,
				Color:    paint.Hex(l.Text.Color),
				FitWidth: l.Text.FitWidth,
			}
		}
	}
	for _, c := range l.Children() {
		jl.Children = append(jl.Children, buildJSONLayer(c))
	}
	return jl
}
