package cli

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/displaypicture/pkg/demo"
	"github.com/matzehuels/displaypicture/pkg/geom"
	"github.com/matzehuels/displaypicture/pkg/profile"
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	assets string  // directory with <name>.png|jpg photos and channel icons
	seed   uint64  // gradient color seed; 0 picks a random one
	export string  // PNG path written by the export key
	size   float64 // widget side length
	cols   int     // preview width in terminal columns
}

// demoCommand creates the demo command, an interactive settings screen
// that drives a widget with toggles, a slider and buttons.
func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{
		export: "displaypicture.png",
		size:   defaultSize,
		cols:   defaultPreviewCols,
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the interactive settings screen",
		Long: `Open a settings screen with a live terminal preview of the widget.

Without --assets the photos and channel icons are generated placeholders.
Press e to write the current picture to --export.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.assets, "assets", "", "directory with demo photos and channel icons")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for background gradients (0 = random)")
	cmd.Flags().StringVar(&opts.export, "export", opts.export, "PNG file written by the export key")
	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "widget side length")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "preview width in terminal columns")

	return cmd
}

// newDemoController builds a widget and a controller showing the first profile.
func newDemoController(opts demoOpts) (*demo.Controller, error) {
	w, err := profile.New(geom.R(0, 0, opts.size, opts.size))
	if err != nil {
		return nil, err
	}

	var copts []demo.Option
	if opts.assets != "" {
		copts = append(copts, demo.WithAssets(demo.DirAssets{Dir: opts.assets}))
	}
	if opts.seed != 0 {
		copts = append(copts, demo.WithSeed(opts.seed))
	}

	ctrl := demo.NewController(w, copts...)
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (c *CLI) runDemo(ctx context.Context, opts demoOpts) error {
	logger := loggerFromContext(ctx)

	ctrl, err := newDemoController(opts)
	if err != nil {
		return err
	}
	logger.Infof("Starting demo for widget %s", ctrl.Widget().ID())
	if opts.assets == "" {
		printWarning("no --assets directory, using generated placeholder images")
	}

	// Log lines would tear the alt screen.
	c.Logger.SetOutput(io.Discard)
	final, err := tea.NewProgram(NewDemoModel(ctrl, opts.export, opts.cols),
		tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	c.Logger.SetOutput(c.logOutput)
	if err != nil {
		return err
	}

	if m, ok := final.(DemoModel); ok {
		if msg, isErr := m.Status(); msg != "" {
			if isErr {
				printError("%s", msg)
			} else {
				printInfo("%s", msg)
			}
		}
	}
	printDetail("last profile: %s", ctrl.State().Profile.Name)
	return nil
}
