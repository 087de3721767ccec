package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/displaypicture/pkg/config"
	"github.com/matzehuels/displaypicture/pkg/errors"
	dpio "github.com/matzehuels/displaypicture/pkg/io"
	"github.com/matzehuels/displaypicture/pkg/observability"
	"github.com/matzehuels/displaypicture/pkg/profile"
	"github.com/matzehuels/displaypicture/pkg/sink"
)

const (
	defaultOutputBase = "displaypicture" // output base name when -o is not set
	idPrefixLength    = 8                // widget ID characters used to namespace SVG IDs
)

// renderOpts holds the command-line flags for the render command.
// Widget flags override the config file only when they are set explicitly.
type renderOpts struct {
	configPath string   // TOML config file
	output     string   // output file path (or base path for multiple outputs)
	formats    []string // output formats: "svg", "png", "pdf", "json"
	scale      float64  // PNG pixel scale

	width       float64
	height      float64
	name        string
	photo       string
	shape       string
	borderWidth float64
	borderColor string
	background  []string
	badge       bool
	badgeCount  int
	badgeSide   string
	badgeColors []string
	channel     string // channel icon path; setting it enables the channel
	channelSide string
}

// newRenderOpts returns the flag defaults.
func newRenderOpts() renderOpts {
	return renderOpts{
		scale:  sink.DefaultScale,
		width:  defaultSize,
		height: defaultSize,
	}
}

// bindFlags registers the widget and output flags on f. The format list is
// parsed separately from formats.
func (o *renderOpts) bindFlags(f *pflag.FlagSet, formats *string) {
	f.StringVar(&o.configPath, "config", "", "TOML config file")
	f.StringVarP(&o.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.StringVarP(formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	f.Float64Var(&o.scale, "scale", o.scale, "PNG pixel scale")
	f.Float64Var(&o.width, "width", o.width, "widget width")
	f.Float64Var(&o.height, "height", o.height, "widget height")
	f.StringVar(&o.name, "name", "", "display name shown as initials")
	f.StringVar(&o.photo, "photo", "", "photo file (wins over --name)")
	f.StringVar(&o.shape, "shape", "", "shape of every layer: square, circle")
	f.Float64Var(&o.borderWidth, "border-width", 0, "border width of every layer")
	f.StringVar(&o.borderColor, "border-color", "", "border color (#rrggbb or a palette name)")
	f.StringSliceVar(&o.background, "background", nil, "thumbnail background color(s); two or more make a gradient")
	f.BoolVar(&o.badge, "badge", false, "attach a counter badge")
	f.IntVar(&o.badgeCount, "badge-count", 0, "badge count")
	f.StringVar(&o.badgeSide, "badge-position", "", "badge corner: top-left, top-right")
	f.StringSliceVar(&o.badgeColors, "badge-background", nil, "badge background color(s)")
	f.StringVar(&o.channel, "channel", "", "channel icon file; attaches the channel")
	f.StringVar(&o.channelSide, "channel-position", "", "channel corner: bottom-left, bottom-right")
}

// renderCommand creates the render command for exporting a widget.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := newRenderOpts()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a profile picture to SVG, PNG, PDF or JSON",
		Long: `Render a profile picture widget described by a TOML config file and/or flags.

Flags override values from --config only when given. Without -f the format
follows the extension of -o, falling back to svg.`,
		Example: `  displaypicture render --name "Ross Geller" --shape circle -o ross.png
  displaypicture render --config widget.toml -f svg,png -o out/widget`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, opts.output)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.Flags(), &opts)
		},
	}
	opts.bindFlags(cmd.Flags(), &formatsStr)
	registerRenderCompletions(cmd)

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, the extension of output decides, then svg.
func parseFormats(s, output string) []string {
	if s == "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); sink.IsValidFormat(ext) {
			return []string{ext}
		}
		return []string{sink.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !sink.IsValidFormat(f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(sink.Formats, ", "))
		}
	}
	return nil
}

// basePath derives the base output path. A known format extension on
// output is stripped.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if sink.IsValidFormat(strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single
// format with an explicit -o path is written exactly there.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// loadConfig reads --config (or the defaults) and applies every flag the
// user set. It also returns the loader for images referenced by the result.
func loadConfig(flags *pflag.FlagSet, opts *renderOpts) (config.Config, config.ImageLoader, error) {
	cfg := config.Default()
	baseDir := "."
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, nil, err
		}
		baseDir = filepath.Dir(opts.configPath)
	}

	// Paths from flags are relative to the working directory, not the config file.
	abs := func(p string) string {
		if a, err := filepath.Abs(p); err == nil {
			return a
		}
		return p
	}

	w := &cfg.Widget
	if flags.Changed("width") {
		w.Width = opts.width
	}
	if flags.Changed("height") {
		w.Height = opts.height
	}
	if flags.Changed("shape") {
		w.Shape = opts.shape
	}
	if flags.Changed("border-width") {
		w.BorderWidth = opts.borderWidth
	}
	if flags.Changed("border-color") {
		w.BorderColor = opts.borderColor
	}
	if flags.Changed("background") {
		w.Background = opts.background
	}

	p := &cfg.Profile
	if flags.Changed("name") {
		p.Name, p.Photo = opts.name, ""
	}
	if flags.Changed("photo") {
		p.Photo = abs(opts.photo)
	}

	b := &cfg.Badge
	if flags.Changed("badge") {
		b.Enabled = opts.badge
	}
	if flags.Changed("badge-count") {
		b.Enabled, b.Count = true, opts.badgeCount
	}
	if flags.Changed("badge-position") {
		b.Position = opts.badgeSide
	}
	if flags.Changed("badge-background") {
		b.Background = opts.badgeColors
	}

	ch := &cfg.Channel
	if flags.Changed("channel") {
		ch.Enabled, ch.Image = opts.channel != "", ""
		if ch.Enabled {
			ch.Image = abs(opts.channel)
		}
	}
	if flags.Changed("channel-position") {
		ch.Position = opts.channelSide
	}

	if cfg.Profile.Name == "" && cfg.Profile.Photo == "" {
		return config.Config{}, nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render: set --name or --photo, or profile.name in the config")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, config.FileLoader(baseDir), nil
}

// runRender builds the widget and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, flags *pflag.FlagSet, opts *renderOpts) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, load, err := loadConfig(flags, opts)
	if err != nil {
		return err
	}
	w, err := config.Build(cfg, load)
	if err != nil {
		return err
	}
	logger.Infof("Built widget %s (%gx%g)", w.ID(), cfg.Widget.Width, cfg.Widget.Height)

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.formats, time.Since(start), err)
	}()

	paths := outputPaths(opts.output, opts.formats)
	var written []string
	for _, format := range opts.formats {
		data, err := renderWidget(w, format, opts.scale)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if err := dpio.WriteFile(paths[format], data); err != nil {
			return err
		}
		written = append(written, paths[format])
	}

	printSuccess("Rendered %s", describeSource(w))
	printWidgetSummary(w.Shape().String(), overlayNames(w))
	for _, p := range written {
		printFile(p)
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	if opts.configPath == "" {
		printNextStep("Try the settings interactively", appName+" demo")
	}
	return nil
}

// renderWidget encodes w in format.
func renderWidget(w *profile.Widget, format string, scale float64) ([]byte, error) {
	prefix := svgPrefix(w)
	switch format {
	case sink.FormatSVG:
		return sink.RenderSVG(w.Layer(), sink.WithIDPrefix(prefix))
	case sink.FormatPNG:
		return sink.RenderPNG(w.Layer(), sink.WithScale(scale))
	case sink.FormatPDF:
		return sink.RenderPDF(w.Layer(), sink.WithPDFSVGOptions(sink.WithIDPrefix(prefix)))
	case sink.FormatJSON:
		return sink.RenderJSON(w.Layer(), sink.WithJSONID(w.ID()), sink.WithJSONIndent())
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// svgPrefix namespaces SVG element IDs by widget, so several exported
// widgets can be inlined into one document.
func svgPrefix(w *profile.Widget) string {
	id := strings.ReplaceAll(w.ID(), "-", "")
	if len(id) > idPrefixLength {
		id = id[:idPrefixLength]
	}
	return "dp" + id
}

func describeSource(w *profile.Widget) string {
	src := w.Source()
	if name, ok := src.Name(); ok {
		return StyleHighlight.Render(name)
	}
	return src.Kind().String()
}

func overlayNames(w *profile.Widget) []string {
	var out []string
	if pos, ok := w.BadgePosition(); ok {
		b, _ := w.Badge()
		out = append(out, fmt.Sprintf("badge %d (%s)", b.Count(), pos))
	}
	if pos, ok := w.ChannelPosition(); ok {
		out = append(out, fmt.Sprintf("channel (%s)", pos))
	}
	return out
}
