package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteYAML
)

// Init creates a fleet configuration file, interactively or from the
// stock ClusterHAT defaults.
func Init(ctx context.Context, outputPath string, useDefaults bool) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	var cfg *config.Config
	if useDefaults {
		cfg = defaultConfig()
	} else {
		result, err := runWizard(ctx)
		if err != nil {
			return err
		}
		cfg = result.ToConfig()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("wizard produced an invalid configuration: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return err
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// defaultConfig returns the stock ClusterHAT configuration.
func defaultConfig() *config.Config {
	return &config.Config{
		User:         config.DefaultUser,
		HostPrefix:   config.DefaultHostPrefix,
		DomainSuffix: config.DefaultDomainSuffix,
		NodeCount:    config.MaxNodes,
		Transport:    config.TransportOpenSSH,
		PowerTool:    config.DefaultPowerTool,
	}
}

// printInitSuccess prints the saved configuration summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	printDone("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	printHeading("Fleet")
	fmt.Printf("  User:       %s\n", cfg.User)
	fmt.Printf("  Nodes:      %d (%s1%s .. %s%d%s)\n",
		cfg.NodeCount,
		cfg.HostPrefix, cfg.DomainSuffix,
		cfg.HostPrefix, cfg.NodeCount, cfg.DomainSuffix)
	fmt.Printf("  Transport:  %s\n", cfg.Transport)
	fmt.Println()

	printHeading("Next steps")
	fmt.Println("  1. Check local tools:   distribute doctor")
	fmt.Println("  2. Send your first file: distribute -v somefile.txt")
	fmt.Println()
}
