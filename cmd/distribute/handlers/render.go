package handlers

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22c55e"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3b82f6"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))
)

// isInteractiveTTY reports whether stdout is an interactive terminal.
func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// printDone prints a completion summary, styled on a TTY and plain
// otherwise.
func printDone(message string) {
	if isInteractiveTTY() {
		fmt.Println(doneStyle.Render(message))
		return
	}
	fmt.Println(message)
}

// printHeading prints a section heading.
func printHeading(text string) {
	if isInteractiveTTY() {
		fmt.Println(headingStyle.Render(text))
		return
	}
	fmt.Println(text)
}
