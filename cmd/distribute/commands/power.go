package commands

import (
	"github.com/spf13/cobra"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/cmd/distribute/handlers"
)

// Power returns the command for powering the fleet on without
// distributing anything.
func Power() *cobra.Command {
	var (
		nodeCount int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "power",
		Short: "Power the target nodes on and wait for them to boot",
		Long: `Power the target nodes on and wait for them to boot.

The full fleet is switched with a single bulk directive; a partial fleet
is switched one node at a time with a short pacing delay between calls.
Either way the command then waits the fixed boot window before returning.

Examples:
  # Power on the whole fleet
  distribute power

  # Power on nodes 1-3 with progress output
  distribute power -n 3 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Power(cmd.Context(), nodeCount, verbose)
		},
	}

	cmd.Flags().IntVarP(&nodeCount, "number", "n", 0, "Target node count (default from configuration)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress output")

	return cmd
}
