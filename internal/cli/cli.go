// Package cli implements the displaypicture command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/displaypicture/pkg/buildinfo"
	"github.com/matzehuels/displaypicture/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "displaypicture"

	// defaultSize is the widget side length when neither a config file nor
	// flags set one.
	defaultSize = 200.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	logOutput io.Writer
}

// New creates a new CLI instance with a default logger. Widget and render
// events are logged at debug level through the observability hooks.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level), logOutput: w}
	hooks := &logHooks{logger: c.Logger}
	observability.SetWidgetHooks(hooks)
	observability.SetRenderHooks(hooks)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Displaypicture composes profile pictures with badges and channel icons",
		Long:         `Displaypicture renders a profile picture widget (a photo or an initials thumbnail) with an optional counter badge and channel icon, in square or circle shape, with borders and gradient backgrounds.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.initialsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
