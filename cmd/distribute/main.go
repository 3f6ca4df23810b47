// Package main is the entry point for the distribute CLI.
//
// distribute fans files and commands out from a controller host to a
// fixed fleet of ClusterHAT nodes over SSH/SCP, optionally powering the
// fleet on first.
//
// Commands: the root command distributes files or broadcasts a command;
// power, doctor, init, version, completion cover the supporting surface.
//
// For detailed usage information, run:
//
//	distribute --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/cmd/distribute/commands"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/preflight"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	err := commands.Root().Execute()
	if commands.HelpRequested() {
		os.Exit(config.ExitHelp)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps fatal errors to the documented process exit codes.
func exitCode(err error) int {
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Code
	}
	var missingErr *preflight.MissingFileError
	if errors.As(err, &missingErr) {
		return config.ExitMissingSource
	}
	return config.ExitFailure
}
