package config

// Process exit codes. Help historically exited 1 in the --output variant
// of this tool and 2 in the --command variant; this implementation follows
// the --command variant.
const (
	ExitFailure       = 1
	ExitHelp          = 2
	ExitNoFiles       = 3
	ExitNodeCount     = 4
	ExitMissingSource = 5
)

// Error is a fatal configuration problem. It carries the process exit
// code so main can map it without inspecting the message.
type Error struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
