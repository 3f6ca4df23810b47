package testing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
)

// MockCommunicator is a mock implementation of remote.Communicator.
// Calls are recorded with the node host as the first argument, in
// invocation order, so tests can assert the node-major file-minor
// sequencing contract against m.Calls.
type MockCommunicator struct {
	mock.Mock
}

// EnsureDir records a directory-ensure call for the node.
func (m *MockCommunicator) EnsureDir(_ context.Context, node fleet.Node, dir string) error {
	args := m.Called(node.Host, dir)
	return args.Error(0)
}

// Copy records a file-copy call for the node.
func (m *MockCommunicator) Copy(_ context.Context, node fleet.Node, localPath, remotePath string) error {
	args := m.Called(node.Host, localPath, remotePath)
	return args.Error(0)
}

// Execute records a command-execution call for the node.
func (m *MockCommunicator) Execute(_ context.Context, node fleet.Node, command string) (string, error) {
	args := m.Called(node.Host, command)
	return args.String(0), args.Error(1)
}

// NewMockCommunicator creates an empty MockCommunicator.
func NewMockCommunicator() *MockCommunicator {
	return &MockCommunicator{}
}

// WithEnsureDir configures successful directory creation for any node.
func (m *MockCommunicator) WithEnsureDir() *MockCommunicator {
	m.On("EnsureDir", mock.Anything, mock.Anything).Return(nil)
	return m
}

// WithCopy configures successful copies for any node and file.
func (m *MockCommunicator) WithCopy() *MockCommunicator {
	m.On("Copy", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return m
}

// WithExecute configures successful command execution returning output.
func (m *MockCommunicator) WithExecute(output string) *MockCommunicator {
	m.On("Execute", mock.Anything, mock.Anything).Return(output, nil)
	return m
}

// WithNodeDown configures every operation against host to fail, modelling
// an unreachable node. Order matters to testify: call this before the
// catch-all With* helpers.
func (m *MockCommunicator) WithNodeDown(host string) *MockCommunicator {
	down := errors.New("connection refused")
	m.On("EnsureDir", host, mock.Anything).Return(down)
	m.On("Copy", host, mock.Anything, mock.Anything).Return(down)
	m.On("Execute", host, mock.Anything).Return("", down)
	return m
}

// OperationSequence returns the recorded calls as "method host" strings in
// invocation order.
func (m *MockCommunicator) OperationSequence() []string {
	seq := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		seq = append(seq, call.Method+" "+call.Arguments.String(0))
	}
	return seq
}

// MockSwitch is a mock implementation of power.Switch. The context is not
// recorded; assertions match on the slot index alone.
type MockSwitch struct {
	mock.Mock
}

// PowerOnAll records a bulk power-on call.
func (m *MockSwitch) PowerOnAll(_ context.Context) error {
	args := m.Called()
	return args.Error(0)
}

// PowerOn records a per-slot power-on call.
func (m *MockSwitch) PowerOn(_ context.Context, index int) error {
	args := m.Called(index)
	return args.Error(0)
}

// NewMockSwitch creates an empty MockSwitch.
func NewMockSwitch() *MockSwitch {
	return &MockSwitch{}
}

// WithPowerOnAll configures the bulk directive to succeed.
func (m *MockSwitch) WithPowerOnAll() *MockSwitch {
	m.On("PowerOnAll").Return(nil)
	return m
}

// WithPowerOn configures per-slot power-on to succeed for any index.
func (m *MockSwitch) WithPowerOn() *MockSwitch {
	m.On("PowerOn", mock.Anything).Return(nil)
	return m
}

// WithPowerOnFailing configures per-slot power-on to fail for any index.
func (m *MockSwitch) WithPowerOnFailing() *MockSwitch {
	m.On("PowerOn", mock.Anything).Return(errors.New("power rail fault"))
	return m
}

// AssertCalledWithIndex asserts a per-slot power-on call for the index.
func (m *MockSwitch) AssertCalledWithIndex(t *testing.T, index int) {
	t.Helper()
	m.AssertCalled(t, "PowerOn", index)
}
