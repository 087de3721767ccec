package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/displaypicture/pkg/sink"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for displaypicture.

Bash:
  $ source <(displaypicture completion bash)

Zsh:
  $ displaypicture completion zsh > "${fpath[1]}/_displaypicture"

Fish:
  $ displaypicture completion fish | source

PowerShell:
  PS> displaypicture completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// renderFlagValues lists the fixed values offered for render flags.
var renderFlagValues = map[string][]string{
	"format":           sink.Formats,
	"shape":            {"square", "circle"},
	"badge-position":   {"top-left", "top-right"},
	"channel-position": {"bottom-left", "bottom-right"},
}

// registerRenderCompletions wires value completion for the render flags.
// Config and image flags complete file names by extension.
func registerRenderCompletions(cmd *cobra.Command) {
	for name, values := range renderFlagValues {
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
	_ = cmd.MarkFlagFilename("config", "toml")
	for _, name := range []string{"photo", "channel"} {
		_ = cmd.MarkFlagFilename(name, "png", "jpg", "jpeg")
	}
}
