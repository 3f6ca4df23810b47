// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/cmd/distribute/handlers"
)

// helpShown records whether help was rendered, so main can map help to
// its dedicated exit code. Cobra itself treats help as a nil-error exit.
var helpShown bool

// HelpRequested reports whether this invocation rendered help text.
func HelpRequested() bool {
	return helpShown
}

// Root returns the root command for the distribute CLI.
//
// The root command itself carries the distribution surface: positional
// FILE arguments plus the power, node-count, directory, command, and
// verbosity flags. Subcommands cover the supporting surface.
func Root() *cobra.Command {
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   "distribute [flags] FILE...",
		Short: "Send files or commands to the ClusterHAT nodes",
		Long: `Send files or commands to the ClusterHAT nodes.

Files are copied to every target node over SCP after the destination
directory is created. Each file must exist in the current directory or in
the destination directory. With -c, the given command is run on every
target node instead and no files are transferred.

Examples:
  # Copy a.txt and b.txt to all 4 nodes
  distribute a.txt b.txt

  # Power on nodes 1-3 first, then copy into /home/pi/work
  distribute -p -n 3 -d /home/pi/work a.txt

  # Run a command on every node
  distribute -c "sudo reboot"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Distribute(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Power, "power", "p", false, "Power the target nodes on before distributing")
	cmd.Flags().IntVarP(&opts.NodeCount, "number", "n", 0, "Target node count (default from configuration)")
	cmd.Flags().StringVarP(&opts.Directory, "directory", "d", "", "Destination directory on the nodes (default: current directory)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Alias for --directory")
	cmd.Flags().StringVarP(&opts.Command, "command", "c", "", "Run this command on the target nodes instead of copying files")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print progress output")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "Fan out to the nodes concurrently (file order per node is kept)")

	cmd.AddCommand(Power())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	// Wrap help so main can exit with the documented help code.
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(c, args)
	})

	return cmd
}
