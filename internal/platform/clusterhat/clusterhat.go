// Package clusterhat wraps the ClusterHAT power-control tool. The board
// exposes a bulk "all" directive distinct from the per-slot "p<i>"
// directives; both are surfaced here and the power controller chooses.
package clusterhat

import (
	"context"
	"fmt"
	"os/exec"
)

// Runner executes the control tool. Injectable for tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - name is the configured control tool
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Switch drives the ClusterHAT power rails through the control tool.
type Switch struct {
	tool   string
	runner Runner
}

// New returns a Switch invoking the given control tool binary.
func New(tool string) *Switch {
	return &Switch{tool: tool, runner: execRunner{}}
}

// NewWithRunner returns a Switch using the given runner.
func NewWithRunner(tool string, runner Runner) *Switch {
	return &Switch{tool: tool, runner: runner}
}

// PowerOnAll issues the bulk power-on directive for every slot.
func (s *Switch) PowerOnAll(ctx context.Context) error {
	if out, err := s.runner.Run(ctx, s.tool, "on", "all"); err != nil {
		return fmt.Errorf("%s on all failed: %w: %s", s.tool, err, string(out))
	}
	return nil
}

// PowerOn issues the power-on directive for slot index (1-based).
func (s *Switch) PowerOn(ctx context.Context, index int) error {
	target := fmt.Sprintf("p%d", index)
	if out, err := s.runner.Run(ctx, s.tool, "on", target); err != nil {
		return fmt.Errorf("%s on %s failed: %w: %s", s.tool, target, err, string(out))
	}
	return nil
}
