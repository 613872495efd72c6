// Package ui renders the user-facing report: styled rename lines, warnings
// distinguishable from the report proper, and the closing summary. Color is
// disabled automatically when stdout is not a terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme bundles the lipgloss styles used for report output.
type Theme struct {
	NoColor bool

	Action  lipgloss.Style // leading verb of a report line
	Path    lipgloss.Style // old path
	Target  lipgloss.Style // proposed name
	Warning lipgloss.Style
	Summary lipgloss.Style
}

// NewTheme builds the styles. With noColor set every style degrades to
// plain text.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Action, t.Path, t.Target, t.Warning, t.Summary = plain, plain, plain, plain, plain
		return t
	}
	t.Action = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	t.Path = lipgloss.NewStyle()
	t.Target = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	t.Summary = lipgloss.NewStyle().Bold(true)
	return t
}

// DetectNoColor reports whether color output should be suppressed: either
// NO_COLOR is set or stdout is not a terminal.
func DetectNoColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
