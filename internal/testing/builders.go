package testing

import "github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"

// ConfigBuilder builds config.Config values for tests, starting from the
// stock ClusterHAT defaults.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder returns a builder seeded with valid defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.Config{
			User:         config.DefaultUser,
			HostPrefix:   config.DefaultHostPrefix,
			DomainSuffix: config.DefaultDomainSuffix,
			NodeCount:    config.MaxNodes,
			Transport:    config.TransportOpenSSH,
			PowerTool:    config.DefaultPowerTool,
		},
	}
}

// WithUser sets the SSH user.
func (b *ConfigBuilder) WithUser(user string) *ConfigBuilder {
	b.cfg.User = user
	return b
}

// WithAddressing sets the hostname derivation fields.
func (b *ConfigBuilder) WithAddressing(prefix, suffix string) *ConfigBuilder {
	b.cfg.HostPrefix = prefix
	b.cfg.DomainSuffix = suffix
	return b
}

// WithNodeCount sets the default target node count.
func (b *ConfigBuilder) WithNodeCount(count int) *ConfigBuilder {
	b.cfg.NodeCount = count
	return b
}

// WithTransport sets the transport name.
func (b *ConfigBuilder) WithTransport(transport string) *ConfigBuilder {
	b.cfg.Transport = transport
	return b
}

// WithSSHKey sets the private key path for the native transport.
func (b *ConfigBuilder) WithSSHKey(path string) *ConfigBuilder {
	b.cfg.SSHKey = path
	return b
}

// Build returns the configured Config.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg
	return &cfg
}
