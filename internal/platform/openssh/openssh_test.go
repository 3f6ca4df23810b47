package openssh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
)

type recordedCall struct {
	name string
	args []string
}

// fakeRunner records invocations and returns a configured result.
type fakeRunner struct {
	calls  []recordedCall
	output []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, recordedCall{name: name, args: args})
	return f.output, f.err
}

func testNode() fleet.Node {
	return fleet.Addressing{HostPrefix: "p", DomainSuffix: ".local", User: "pi"}.Node(1)
}

func TestCommunicator_EnsureDir(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	comm := NewWithRunner(runner)

	err := comm.EnsureDir(context.Background(), testNode(), "/home/pi/work/")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "ssh", call.name)
	assert.Contains(t, call.args, "pi@p1.local")
	assert.Contains(t, call.args, "mkdir -p /home/pi/work/")
	assert.Contains(t, call.args, "BatchMode=yes")
}

func TestCommunicator_Copy(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	comm := NewWithRunner(runner)

	err := comm.Copy(context.Background(), testNode(), "a.txt", "/home/pi/work/a.txt")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "scp", call.name)
	assert.Contains(t, call.args, "a.txt")
	assert.Contains(t, call.args, "pi@p1.local:/home/pi/work/a.txt")
}

func TestCommunicator_Execute(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte("up 3 days\n")}
	comm := NewWithRunner(runner)

	out, err := comm.Execute(context.Background(), testNode(), "uptime")
	require.NoError(t, err)
	assert.Equal(t, "up 3 days\n", out)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "ssh", call.name)
	// The command string is passed through literally as a single argument.
	assert.Equal(t, "uptime", call.args[len(call.args)-1])
}

func TestCommunicator_ErrorsCarryHost(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: errors.New("exit status 255")}
	comm := NewWithRunner(runner)
	node := testNode()

	err := comm.EnsureDir(context.Background(), node, "/tmp/")
	assert.ErrorContains(t, err, "p1.local")

	err = comm.Copy(context.Background(), node, "a.txt", "/tmp/a.txt")
	assert.ErrorContains(t, err, "p1.local")

	_, err = comm.Execute(context.Background(), node, "uptime")
	assert.ErrorContains(t, err, "p1.local")
}
