package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fanout"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/observe"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/platform/clusterhat"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/platform/openssh"
	sshplatform "github.com/PaulBrownMagic/ClusterHat-Distribute/internal/platform/ssh"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/power"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/preflight"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/remote"
)

// Options carries the per-run choices from the root command's flags.
type Options struct {
	Power     bool
	NodeCount int
	Directory string
	Output    string
	Command   string
	Verbose   bool
	Parallel  bool
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig resolves the fleet configuration.
	loadConfig = config.Load

	// getwd returns the current working directory.
	getwd = os.Getwd

	// validateFiles runs the two-root preflight check.
	validateFiles = preflight.Validate

	// newCommunicator builds the remote primitives for the configured
	// transport.
	newCommunicator = func(cfg *config.Config) (remote.Communicator, error) {
		if cfg.Transport == config.TransportSSH {
			return sshplatform.NewFromKeyFile(cfg.SSHKey)
		}
		return openssh.New(), nil
	}

	// powerOn runs the power controller for nodes 1..count.
	powerOn = func(ctx context.Context, cfg *config.Config, obs observe.Observer, verbose bool, count int) {
		controller := power.New(clusterhat.New(cfg.PowerTool), obs)
		controller.EnableCountdown(verbose)
		controller.PowerOn(ctx, count)
	}
)

// Distribute is the orchestration driver: it validates inputs, then runs
// exactly one of command broadcast or file distribution in a single pass.
//
// Check order matters: node count bounds come before everything else, and
// command mode runs before any file-argument check.
func Distribute(ctx context.Context, opts Options, files []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	count := opts.NodeCount
	if count == 0 {
		count = cfg.NodeCount
	}
	if err := config.ValidateNodeCount(count); err != nil {
		return err
	}

	dir, err := destinationDir(opts)
	if err != nil {
		return err
	}

	obs := observe.New(opts.Verbose)
	nodes := cfg.Addressing().Targets(count)

	comm, err := newCommunicator(cfg)
	if err != nil {
		return err
	}
	orchestrator := fanout.New(comm, obs)

	// Command mode is terminal: no file validation, no power action.
	if opts.Command != "" {
		orchestrator.Broadcast(ctx, nodes, opts.Command)
		printDone(fmt.Sprintf("Ran %q on %d node(s)", opts.Command, count))
		return nil
	}

	if len(files) == 0 {
		return &config.Error{
			Code:    config.ExitNoFiles,
			Message: "at least one file argument is required (or -c to run a command)",
		}
	}

	sourceRoot, err := validateFiles(files, dir)
	if err != nil {
		return err
	}

	if opts.Power {
		powerOn(ctx, cfg, obs, opts.Verbose, count)
	}

	if opts.Parallel {
		orchestrator.DistributeParallel(ctx, nodes, files, sourceRoot, dir)
	} else {
		orchestrator.Distribute(ctx, nodes, files, sourceRoot, dir)
	}

	printDone(fmt.Sprintf("Sent %d file(s) to %d node(s) under %s", len(files), count, dir))
	return nil
}

// destinationDir resolves and normalizes the destination directory:
// -d wins over -o, and the default is the current working directory.
// Normalization happens exactly once, here, before any transfer begins.
func destinationDir(opts Options) (string, error) {
	dir := opts.Directory
	if dir == "" {
		dir = opts.Output
	}
	if dir == "" {
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}
	return config.EnsureTrailingSeparator(dir), nil
}
