package config

import "fmt"

// Validate checks the resolved configuration and returns a fatal Error on
// the first problem found. Node count bounds carry their dedicated exit
// code; everything else is a plain configuration failure.
func (c *Config) Validate() error {
	if c.NodeCount < 1 || c.NodeCount > MaxNodes {
		return &Error{
			Code:    ExitNodeCount,
			Message: fmt.Sprintf("node count %d out of range: must be between 1 and %d", c.NodeCount, MaxNodes),
		}
	}
	if c.User == "" {
		return &Error{Code: ExitFailure, Message: "user is required"}
	}
	if c.HostPrefix == "" {
		return &Error{Code: ExitFailure, Message: "host_prefix is required"}
	}
	if c.Transport != TransportOpenSSH && c.Transport != TransportSSH {
		return &Error{
			Code:    ExitFailure,
			Message: fmt.Sprintf("unknown transport %q: must be %q or %q", c.Transport, TransportOpenSSH, TransportSSH),
		}
	}
	if c.Transport == TransportSSH && c.SSHKey == "" {
		return &Error{Code: ExitFailure, Message: "ssh_key is required for the ssh transport"}
	}
	return nil
}

// ValidateNodeCount checks a requested node count against the fleet bounds.
// Used for the -n flag before any other action runs.
func ValidateNodeCount(count int) error {
	if count < 1 || count > MaxNodes {
		return &Error{
			Code:    ExitNodeCount,
			Message: fmt.Sprintf("node count %d out of range: must be between 1 and %d", count, MaxNodes),
		}
	}
	return nil
}
