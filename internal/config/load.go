package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load resolves the fleet configuration: distribute.yaml (current
// directory, then $HOME), overridden by environment variables, with
// built-in defaults filling the gaps. A missing config file is not an
// error; the defaults describe a stock ClusterHAT.
func Load() (*Config, error) {
	// Opportunistic .env load; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{}

	if path := findConfigFile(); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// findConfigFile returns the first distribute.yaml found in the current
// directory or $HOME, or "" when neither exists.
func findConfigFile() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// applyEnv overlays recognized environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DISTRIBUTE_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("DISTRIBUTE_HOST_PREFIX"); v != "" {
		cfg.HostPrefix = v
	}
	if v := os.Getenv("DISTRIBUTE_DOMAIN_SUFFIX"); v != "" {
		cfg.DomainSuffix = v
	}
	if v := os.Getenv("DISTRIBUTE_TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv("DISTRIBUTE_SSH_KEY"); v != "" {
		cfg.SSHKey = v
	}
	if v := os.Getenv("DISTRIBUTE_NODE_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.NodeCount = n
		}
	}
	if v := os.Getenv("CLUSTERHAT_TOOL"); v != "" {
		cfg.PowerTool = v
	}
}

// applyDefaults fills unset fields with the stock ClusterHAT values.
func applyDefaults(cfg *Config) {
	if cfg.User == "" {
		cfg.User = DefaultUser
	}
	if cfg.HostPrefix == "" {
		cfg.HostPrefix = DefaultHostPrefix
	}
	if cfg.DomainSuffix == "" {
		cfg.DomainSuffix = DefaultDomainSuffix
	}
	if cfg.NodeCount == 0 {
		cfg.NodeCount = MaxNodes
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportOpenSSH
	}
	if cfg.PowerTool == "" {
		cfg.PowerTool = DefaultPowerTool
	}
}
