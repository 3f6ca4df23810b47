// Package testing centralizes shared test doubles: testify mocks for the
// remote communicator and power switch, plus a fluent config builder.
// Mocks record node hosts rather than full node values so ordering
// assertions stay readable.
package testing
