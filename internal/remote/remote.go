// Package remote defines the opaque remote-operation primitives the
// orchestration layer fans out: directory creation, file copy, and command
// execution on a single node. Implementations live under internal/platform.
//
// Callers in the orchestration core deliberately discard the returned
// errors: fan-out is best-effort and an unreachable node must not block
// its siblings. The primitives still report status so that other callers
// (and tests) can observe it.
package remote

import (
	"context"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
)

// Communicator executes the three remote primitives against one node.
type Communicator interface {
	// EnsureDir creates dir and any missing parents on the node.
	// Idempotent: an existing directory is not an error.
	EnsureDir(ctx context.Context, node fleet.Node, dir string) error

	// Copy transfers the local file at localPath to remotePath on the node.
	Copy(ctx context.Context, node fleet.Node, localPath, remotePath string) error

	// Execute runs a command on the node and returns its combined output.
	Execute(ctx context.Context, node fleet.Node, command string) (string, error)
}
