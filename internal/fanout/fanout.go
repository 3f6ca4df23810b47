// Package fanout dispatches file distribution and command broadcast across
// the target nodes.
//
// The default mode is strictly sequential: all operations for node i
// complete (or are attempted) before node i+1 starts, and files within a
// node go out in input order. Remote call status is deliberately discarded
// at every call site: one unreachable node must not block distribution to
// its siblings, and no aggregate error is produced at the end.
package fanout

import (
	"context"
	"path/filepath"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/observe"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/remote"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/util/async"
)

// Orchestrator fans remote operations out over a Communicator.
type Orchestrator struct {
	Comm     remote.Communicator
	Observer observe.Observer
}

// New returns an Orchestrator reporting through obs.
func New(comm remote.Communicator, obs observe.Observer) *Orchestrator {
	return &Orchestrator{Comm: comm, Observer: obs}
}

// Distribute copies each file to each node, one node at a time.
//
// Per node: the destination directory is ensured first, then every file is
// copied in input order to destDir+filename. Local files are read from
// sourceRoot, the single root preflight validation settled on.
func (o *Orchestrator) Distribute(ctx context.Context, nodes []fleet.Node, filenames []string, sourceRoot, destDir string) {
	for _, node := range nodes {
		o.distributeNode(ctx, node, filenames, sourceRoot, destDir)
	}
}

// DistributeParallel runs each node's pipeline as one concurrent task.
//
// File order within a node is preserved; cross-node interleaving is
// unspecified. Opt-in only: hardware pacing concerns keep the sequential
// mode the default.
func (o *Orchestrator) DistributeParallel(ctx context.Context, nodes []fleet.Node, filenames []string, sourceRoot, destDir string) {
	tasks := make([]async.Task, 0, len(nodes))
	for _, node := range nodes {
		tasks = append(tasks, async.Task{
			Name: node.Host,
			Func: func(ctx context.Context) error {
				o.distributeNode(ctx, node, filenames, sourceRoot, destDir)
				return nil
			},
		})
	}
	// Tasks never report errors; per-call failures are already discarded.
	_ = async.RunParallel(ctx, tasks)
}

// distributeNode runs the full pipeline for one node: directory-ensure,
// then each file in order. Failures are discarded, not aborted on.
func (o *Orchestrator) distributeNode(ctx context.Context, node fleet.Node, filenames []string, sourceRoot, destDir string) {
	o.Observer.Printf("%s: ensuring directory %s exists", node.Host, destDir)
	_ = o.Comm.EnsureDir(ctx, node, destDir)

	for _, name := range filenames {
		o.Observer.Printf("%s: sending %s", node.Host, name)
		_ = o.Comm.Copy(ctx, node, filepath.Join(sourceRoot, name), destDir+name)
	}
}

// Broadcast executes command on each node sequentially, same discard
// policy as Distribute. Output is not collected.
func (o *Orchestrator) Broadcast(ctx context.Context, nodes []fleet.Node, command string) {
	for _, node := range nodes {
		o.Observer.Printf("%s: running %q", node.Host, command)
		_, _ = o.Comm.Execute(ctx, node, command)
	}
}
