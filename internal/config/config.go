package config

import (
	"strings"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
)

// Config holds the fleet settings resolved from distribute.yaml, the
// environment, and built-in defaults. Per-run choices (files, directory,
// power, verbosity) come from flags and are not part of this struct.
type Config struct {
	// User is the SSH user on every node.
	User string `mapstructure:"user"`

	// HostPrefix and DomainSuffix derive node hostnames from the index:
	// "<prefix><i><suffix>".
	HostPrefix   string `mapstructure:"host_prefix"`
	DomainSuffix string `mapstructure:"domain_suffix"`

	// NodeCount is the default target node count, 1..MaxNodes.
	NodeCount int `mapstructure:"node_count"`

	// Transport selects the remote primitives: "openssh" (default) shells
	// out to ssh/scp, "ssh" dials nodes with the native client.
	Transport string `mapstructure:"transport"`

	// SSHKey is the private key path used by the native transport.
	SSHKey string `mapstructure:"ssh_key"`

	// PowerTool is the ClusterHAT control binary invoked for power-on.
	PowerTool string `mapstructure:"power_tool"`
}

// Addressing returns the fleet addressing derived from this configuration.
func (c *Config) Addressing() fleet.Addressing {
	return fleet.Addressing{
		HostPrefix:   c.HostPrefix,
		DomainSuffix: c.DomainSuffix,
		User:         c.User,
	}
}

// EnsureTrailingSeparator appends a path separator when absent, so that
// destination + filename concatenation is well-formed. Idempotent; applied
// exactly once during run setup, before any transfer begins.
func EnsureTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
