// Package prerequisites checks that the client tools a run will shell out
// to are present on PATH. Used by the doctor command; it never probes the
// network.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string
}

// DistributionTools returns the tools a run with the given configuration
// shells out to. The native transport needs no client binaries; the power
// tool is only required when power-on is part of the workflow.
func DistributionTools(cfg *config.Config) []Tool {
	var tools []Tool

	if cfg.Transport == config.TransportOpenSSH {
		tools = append(tools,
			Tool{
				Name:        "ssh",
				Required:    true,
				Description: "Remote command execution and directory creation",
			},
			Tool{
				Name:        "scp",
				Required:    true,
				Description: "File transfer to the nodes",
			},
		)
	}

	tools = append(tools, Tool{
		Name:        cfg.PowerTool,
		Required:    false,
		Description: "Fleet power control (only needed with -p or the power command)",
	})

	return tools
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, tool.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			// Best effort; many tools have no version flag.
			result.Version = toolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// toolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func toolVersion(name string) string {
	for _, flag := range []string{"--version", "-V"} {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		output, err := exec.Command(name, flag).CombinedOutput()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}
	return ""
}
