package ui

import (
	"fmt"
	"io"
)

// Printer writes report lines to a single destination. It satisfies the
// pipeline's Reporter interface.
type Printer struct {
	out   io.Writer
	theme *Theme
}

// NewPrinter creates a Printer writing to out with the given theme.
func NewPrinter(out io.Writer, theme *Theme) *Printer {
	return &Printer{out: out, theme: theme}
}

// WouldRename emits the preview-mode report line for one file.
func (p *Printer) WouldRename(oldPath, newName string) {
	fmt.Fprintf(p.out, "%s %s to %s\n",
		p.theme.Action.Render("Would rename"),
		p.theme.Path.Render(oldPath),
		p.theme.Target.Render(newName))
}

// Renamed emits the apply-mode confirmation line for one file.
func (p *Printer) Renamed(oldPath, newName string) {
	fmt.Fprintf(p.out, "%s %s to %s\n",
		p.theme.Action.Render("Renamed"),
		p.theme.Path.Render(oldPath),
		p.theme.Target.Render(newName))
}

// Warnf emits a warning line, visually distinct from report lines.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n",
		p.theme.Warning.Render("warning:"),
		fmt.Sprintf(format, args...))
}

// Summaryf emits the closing run summary.
func (p *Printer) Summaryf(format string, args ...any) {
	fmt.Fprintln(p.out, p.theme.Summary.Render(fmt.Sprintf(format, args...)))
}
