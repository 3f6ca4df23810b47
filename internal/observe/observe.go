// Package observe provides the progress reporting interface used by the
// orchestration packages. Component code reports through an Observer and
// never checks a verbose flag itself; the caller picks the implementation.
package observe

import (
	"fmt"
	"io"
	"os"
)

// Observer receives human-readable progress lines during a run.
type Observer interface {
	Printf(format string, v ...any)
}

// Console writes progress lines to W, one per call.
type Console struct {
	W io.Writer
}

// Printf implements Observer.
func (c Console) Printf(format string, v ...any) {
	fmt.Fprintf(c.W, format+"\n", v...)
}

// Nop discards all progress output. It serves the quiet default.
type Nop struct{}

// Printf implements Observer.
func (Nop) Printf(string, ...any) {}

// New returns a stdout-backed observer when verbose is set, Nop otherwise.
func New(verbose bool) Observer {
	if verbose {
		return Console{W: os.Stdout}
	}
	return Nop{}
}
