package commands

import (
	"github.com/spf13/cobra"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/cmd/distribute/handlers"
)

// Doctor returns the command for local preflight diagnostics.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check local tools and show the resolved fleet addressing",
		Long: `Check local tools and show the resolved fleet addressing.

Reports which client tools the active configuration needs and whether
they are on PATH, plus the node addresses a run would target. Purely
local: no node is contacted and no power action is taken.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor()
		},
	}
}
