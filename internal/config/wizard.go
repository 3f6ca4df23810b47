package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// WizardResult holds the user's choices from the setup wizard.
type WizardResult struct {
	User         string
	HostPrefix   string
	DomainSuffix string
	NodeCount    int
	Transport    string
	SSHKey       string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		User:         DefaultUser,
		HostPrefix:   DefaultHostPrefix,
		DomainSuffix: DefaultDomainSuffix,
		NodeCount:    MaxNodes,
		Transport:    TransportOpenSSH,
	}

	form := huh.NewForm(
		// Fleet addressing
		huh.NewGroup(
			huh.NewInput().
				Title("SSH user").
				Description("The login user on every node").
				Placeholder(DefaultUser).
				Value(&result.User).
				Validate(validateNonEmpty("SSH user")),

			huh.NewInput().
				Title("Host prefix").
				Description("Node i is addressed as <prefix><i><suffix>").
				Placeholder(DefaultHostPrefix).
				Value(&result.HostPrefix).
				Validate(validateNonEmpty("host prefix")),

			huh.NewInput().
				Title("Domain suffix").
				Description("Appended to every hostname, e.g. \".local\". May be empty.").
				Placeholder(DefaultDomainSuffix).
				Value(&result.DomainSuffix),
		),

		// Default node count
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default node count").
				Description("How many nodes a run targets when -n is not given").
				Options(
					huh.NewOption("1 node", 1),
					huh.NewOption("2 nodes", 2),
					huh.NewOption("3 nodes", 3),
					huh.NewOption("4 nodes (full fleet)", 4),
				).
				Value(&result.NodeCount),
		),

		// Transport
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transport").
				Description("openssh: shell out to ssh/scp | ssh: native client, needs a key file").
				Options(
					huh.NewOption("OpenSSH client binaries", TransportOpenSSH),
					huh.NewOption("Native SSH client", TransportSSH),
				).
				Value(&result.Transport),

			huh.NewInput().
				Title("SSH private key (native transport only)").
				Description("Leave empty when using the OpenSSH client binaries").
				Placeholder("~/.ssh/id_ed25519").
				Value(&result.SSHKey),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config.
func (r *WizardResult) ToConfig() *Config {
	return &Config{
		User:         r.User,
		HostPrefix:   r.HostPrefix,
		DomainSuffix: r.DomainSuffix,
		NodeCount:    r.NodeCount,
		Transport:    r.Transport,
		SSHKey:       r.SSHKey,
		PowerTool:    DefaultPowerTool,
	}
}

// WriteYAML writes the configuration to path as distribute.yaml content.
func WriteYAML(cfg *Config, path string) error {
	out := map[string]interface{}{
		"user":          cfg.User,
		"host_prefix":   cfg.HostPrefix,
		"domain_suffix": cfg.DomainSuffix,
		"node_count":    cfg.NodeCount,
		"transport":     cfg.Transport,
	}
	if cfg.SSHKey != "" {
		out["ssh_key"] = cfg.SSHKey
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// validateNonEmpty rejects blank input for a required field.
func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
