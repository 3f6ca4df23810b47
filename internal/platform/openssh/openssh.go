// Package openssh implements the remote primitives by shelling out to the
// ssh and scp client binaries. This is the default transport: it reuses the
// operator's SSH agent, known configs, and key setup unchanged.
package openssh

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
)

// Runner executes a local command. Injectable so tests can record
// invocations without touching the network.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands through os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - name is one of the fixed client binaries
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// clientOptions keep the ssh/scp clients non-interactive: a prompt would
// stall the whole sequential run.
var clientOptions = []string{
	"-o", "BatchMode=yes",
	"-o", "ConnectTimeout=10",
	"-q",
}

// Communicator fans remote operations out through the OpenSSH clients.
type Communicator struct {
	runner Runner
}

// New returns a Communicator backed by the real ssh and scp binaries.
func New() *Communicator {
	return &Communicator{runner: execRunner{}}
}

// NewWithRunner returns a Communicator using the given runner.
func NewWithRunner(runner Runner) *Communicator {
	return &Communicator{runner: runner}
}

// EnsureDir creates dir and missing parents on the node via ssh mkdir -p.
func (c *Communicator) EnsureDir(ctx context.Context, node fleet.Node, dir string) error {
	args := append(append([]string{}, clientOptions...), node.Address(), "mkdir -p "+dir)
	if out, err := c.runner.Run(ctx, "ssh", args...); err != nil {
		return fmt.Errorf("mkdir on %s failed: %w: %s", node.Host, err, string(out))
	}
	return nil
}

// Copy transfers localPath to remotePath on the node via scp.
func (c *Communicator) Copy(ctx context.Context, node fleet.Node, localPath, remotePath string) error {
	args := append(append([]string{}, clientOptions...), localPath, node.Address()+":"+remotePath)
	if out, err := c.runner.Run(ctx, "scp", args...); err != nil {
		return fmt.Errorf("copy %s to %s failed: %w: %s", localPath, node.Host, err, string(out))
	}
	return nil
}

// Execute runs command on the node via ssh and returns its combined output.
func (c *Communicator) Execute(ctx context.Context, node fleet.Node, command string) (string, error) {
	args := append(append([]string{}, clientOptions...), node.Address(), command)
	out, err := c.runner.Run(ctx, "ssh", args...)
	if err != nil {
		return string(out), fmt.Errorf("command failed on %s: %w", node.Host, err)
	}
	return string(out), nil
}
