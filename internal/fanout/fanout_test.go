package fanout

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/observe"
	ctesting "github.com/PaulBrownMagic/ClusterHat-Distribute/internal/testing"
)

var addressing = fleet.Addressing{HostPrefix: "p", DomainSuffix: ".local", User: "pi"}

func TestDistribute_NodeMajorFileMinorOrder(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Nop{})

	o.Distribute(context.Background(), addressing.Targets(2), []string{"a.txt", "b.txt"}, ".", "/home/pi/work/")

	assert.Equal(t, []string{
		"EnsureDir p1.local",
		"Copy p1.local",
		"Copy p1.local",
		"EnsureDir p2.local",
		"Copy p2.local",
		"Copy p2.local",
	}, comm.OperationSequence())
}

func TestDistribute_CallCounts(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Nop{})

	files := []string{"a.txt", "b.txt", "c.txt"}
	o.Distribute(context.Background(), addressing.Targets(4), files, ".", "/srv/")

	// K directory-ensure calls and K*|F| copies.
	comm.AssertNumberOfCalls(t, "EnsureDir", 4)
	comm.AssertNumberOfCalls(t, "Copy", 12)
}

func TestDistribute_PathConstruction(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Nop{})

	o.Distribute(context.Background(), addressing.Targets(1), []string{"a.txt"}, "/src", "/home/pi/work/")

	comm.AssertCalled(t, "EnsureDir", "p1.local", "/home/pi/work/")
	comm.AssertCalled(t, "Copy", "p1.local", "/src/a.txt", "/home/pi/work/a.txt")
}

func TestDistribute_SourceRootCwd(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Nop{})

	o.Distribute(context.Background(), addressing.Targets(1), []string{"a.txt"}, ".", "/srv/")

	comm.AssertCalled(t, "Copy", "p1.local", "a.txt", "/srv/a.txt")
}

func TestDistribute_DownNodeDoesNotBlockSiblings(t *testing.T) {
	t.Parallel()

	// Node 2 refuses everything; nodes 1 and 3 must still get all files.
	comm := ctesting.NewMockCommunicator().
		WithNodeDown("p2.local").
		WithEnsureDir().
		WithCopy()
	o := New(comm, observe.Nop{})

	o.Distribute(context.Background(), addressing.Targets(3), []string{"a.txt", "b.txt"}, ".", "/srv/")

	// Every call is still attempted: no early abort, no retry.
	comm.AssertNumberOfCalls(t, "EnsureDir", 3)
	comm.AssertNumberOfCalls(t, "Copy", 6)
}

func TestDistribute_FailedDirEnsureStillCopies(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().
		WithNodeDown("p1.local")
	o := New(comm, observe.Nop{})

	o.Distribute(context.Background(), addressing.Targets(1), []string{"a.txt"}, ".", "/srv/")

	// Copy is attempted even after the directory-ensure failed.
	comm.AssertNumberOfCalls(t, "Copy", 1)
}

func TestDistributeParallel_AllNodesServed(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Nop{})

	o.DistributeParallel(context.Background(), addressing.Targets(4), []string{"a.txt", "b.txt"}, ".", "/srv/")

	comm.AssertNumberOfCalls(t, "EnsureDir", 4)
	comm.AssertNumberOfCalls(t, "Copy", 8)
}

func TestDistributeParallel_FileOrderWithinNode(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Nop{})

	o.DistributeParallel(context.Background(), addressing.Targets(3), []string{"a.txt", "b.txt"}, "/src", "/srv/")

	// Cross-node interleaving is unspecified; per node the sequence must
	// still be EnsureDir then the files in input order.
	// All tasks have finished by now; reading Calls is race-free.
	perNode := map[string][]string{}
	for _, call := range comm.Calls {
		host := call.Arguments.String(0)
		op := call.Method
		if op == "Copy" {
			op = "Copy " + call.Arguments.String(1)
		}
		perNode[host] = append(perNode[host], op)
	}

	hosts := make([]string, 0, len(perNode))
	for host := range perNode {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	require.Equal(t, []string{"p1.local", "p2.local", "p3.local"}, hosts)

	for _, host := range hosts {
		assert.Equal(t, []string{"EnsureDir", "Copy /src/a.txt", "Copy /src/b.txt"}, perNode[host])
	}
}

func TestBroadcast_SequentialPerNode(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().WithExecute("ok\n")
	o := New(comm, observe.Nop{})

	o.Broadcast(context.Background(), addressing.Targets(4), "uptime")

	comm.AssertNumberOfCalls(t, "Execute", 4)
	assert.Equal(t, []string{
		"Execute p1.local",
		"Execute p2.local",
		"Execute p3.local",
		"Execute p4.local",
	}, comm.OperationSequence())
	comm.AssertCalled(t, "Execute", "p1.local", "uptime")
}

func TestBroadcast_FailuresDiscarded(t *testing.T) {
	t.Parallel()

	comm := ctesting.NewMockCommunicator().
		WithNodeDown("p1.local").
		WithExecute("")
	o := New(comm, observe.Nop{})

	o.Broadcast(context.Background(), addressing.Targets(2), "reboot")

	comm.AssertNumberOfCalls(t, "Execute", 2)
}

func TestDistribute_VerboseProgressLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	comm := ctesting.NewMockCommunicator().WithEnsureDir().WithCopy()
	o := New(comm, observe.Console{W: &buf})

	o.Distribute(context.Background(), addressing.Targets(1), []string{"a.txt"}, ".", "/srv/")

	out := buf.String()
	assert.Contains(t, out, "p1.local: ensuring directory /srv/ exists")
	assert.Contains(t, out, "p1.local: sending a.txt")
}
