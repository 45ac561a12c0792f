// Package output handles formatted terminal output for the export run.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
}

// Printer writes styled run progress, warnings, and the final summary.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	quiet  bool
	styles *Styles
}

// NewPrinter creates a Printer. When color is false (no TTY) all styles
// are neutral; when quiet is true only warnings are printed.
func NewPrinter(w, errW io.Writer, quiet, color bool) *Printer {
	styles := &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
	}
	if !color {
		styles.Success = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
		styles.Dim = lipgloss.NewStyle()
		styles.Title = lipgloss.NewStyle()
	}
	return &Printer{w: w, errW: errW, quiet: quiet, styles: styles}
}

// Infof prints a progress line. Suppressed in quiet mode.
func (p *Printer) Infof(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Successf prints a highlighted completion line. Suppressed in quiet mode.
func (p *Printer) Successf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.w, p.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning to the error writer. Never suppressed.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.errW, p.styles.Warning.Render("[!] "+fmt.Sprintf(format, args...)))
}

// Titlef prints a section header line. Suppressed in quiet mode.
func (p *Printer) Titlef(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.w, p.styles.Title.Render(fmt.Sprintf(format, args...)))
}

// Itemf prints an indented list item. Suppressed in quiet mode.
func (p *Printer) Itemf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, "  - %s\n", fmt.Sprintf(format, args...))
}
