package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/displaypicture/pkg/thumbnail"
)

// initialsCommand creates the initials command, which prints the initials a
// thumbnail would show for each name.
func (c *CLI) initialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "initials NAME...",
		Short:   "Print the initials shown for display names",
		Example: `  displaypicture initials "Ross Geller" "Phoebe Buffay"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := initialsFor(args)
			if err != nil {
				return err
			}
			for i, name := range args {
				printKeyValue(results[i], name)
			}
			return nil
		},
	}
}

// initialsFor returns the initials of every name, failing on the first
// invalid one.
func initialsFor(names []string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		s, err := thumbnail.Initials(name)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
