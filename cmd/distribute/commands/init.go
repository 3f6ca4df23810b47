package commands

import (
	"github.com/spf13/cobra"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/cmd/distribute/handlers"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
)

// Init returns the command for interactively creating a fleet
// configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "distribute.yaml")
//	--defaults: Skip the wizard and write the stock ClusterHAT defaults
func Init() *cobra.Command {
	var (
		outputPath  string
		useDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a fleet configuration",
		Long: `Interactively create a fleet configuration file.

The wizard asks about:

  - SSH user and hostname derivation (prefix + index + suffix)
  - Default node count
  - Transport (OpenSSH client binaries or the native SSH client)

Use --defaults to skip the wizard and write the stock ClusterHAT
configuration (pi@p1.local .. pi@p4.local over the OpenSSH clients).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, useDefaults)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.FileName, "Output file path")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Write defaults without running the wizard")

	return cmd
}
