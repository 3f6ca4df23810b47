package handlers

import (
	"fmt"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/util/prerequisites"
)

// checkTools is a factory variable so tests can avoid PATH lookups.
var checkTools = prerequisites.Check

// Doctor handles the doctor command: report the resolved configuration,
// the client tools the active transport needs, and the node addresses a
// run would target. Purely local; nothing is contacted.
func Doctor() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printHeading("Configuration")
	fmt.Printf("  Transport:    %s\n", cfg.Transport)
	fmt.Printf("  Node count:   %d\n", cfg.NodeCount)
	if cfg.SSHKey != "" {
		fmt.Printf("  SSH key:      %s\n", cfg.SSHKey)
	}
	fmt.Println()

	printHeading("Client tools")
	results := checkTools(prerequisites.DistributionTools(cfg))
	for _, result := range results.Results {
		status := "ok"
		if !result.Found {
			status = "MISSING"
			if !result.Tool.Required {
				status = "missing (optional)"
			}
		}
		fmt.Printf("  %-12s %s", result.Tool.Name, status)
		if result.Path != "" {
			fmt.Printf("  %s", dimStyle.Render(result.Path))
		}
		fmt.Println()
	}
	fmt.Println()

	printHeading("Fleet addressing")
	for _, node := range cfg.Addressing().Targets(cfg.NodeCount) {
		fmt.Printf("  node %d  %s\n", node.Index, node.Address())
	}
	fmt.Println()

	if err := results.Error(); err != nil {
		fmt.Println(warnStyle.Render(err.Error()))
		return err
	}

	printDone("All required tools present")
	return nil
}
