package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the outcome of one doctor check.
type Status int

// Check outcomes.
const (
	StatusOK Status = iota
	StatusMissing
	StatusFail
	StatusWarn
)

func (s Status) tag() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusMissing:
		return "[MISS]"
	case StatusWarn:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

// Summary describes a finished project for the closing message.
type Summary struct {
	Name      string
	Dir       string
	Language  string
	Template  string
	Files     []string
	Installed []string
	Skipped   []string
	Warnings  []string
	// NextSteps are shell commands shown after the summary.
	NextSteps []string
}

// Printer writes styled output to one writer.
type Printer struct {
	w io.Writer
	s styles
}

// New returns a Printer whose color support is detected from w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, s: newStyles(lipgloss.NewRenderer(w))}
}

// Title prints a bold heading line.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.s.title.Render(text))
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.s.warn.Render("Warning:"), fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.s.fail.Render("Error:"), err)
}

// Check prints one indented doctor status line.
func (p *Printer) Check(status Status, format string, args ...any) {
	var tag string
	switch status {
	case StatusOK:
		tag = p.s.ok.Render(status.tag())
	case StatusWarn:
		tag = p.s.warn.Render(status.tag())
	default:
		tag = p.s.fail.Render(status.tag())
	}
	fmt.Fprintf(p.w, "  %s %s\n", tag, fmt.Sprintf(format, args...))
}

// Summary prints the boxed creation summary followed by warnings and next
// steps.
func (p *Printer) Summary(sum Summary) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", p.s.title.Render("Created "+sum.Name))
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", p.s.label.Render(fmt.Sprintf("%-10s", label)), value)
	}
	row("Location", sum.Dir)
	row("Language", sum.Language)
	row("Template", sum.Template)
	row("Files", fmt.Sprintf("%d written", len(sum.Files)))
	if len(sum.Installed) > 0 {
		row("Installed", strings.Join(sum.Installed, ", "))
	}
	if len(sum.Skipped) > 0 {
		row("Skipped", strings.Join(sum.Skipped, ", ")+" (already declared)")
	}
	fmt.Fprintln(p.w, p.s.box.Render(strings.TrimRight(b.String(), "\n")))

	for _, w := range sum.Warnings {
		p.Warn("%s", w)
	}

	if len(sum.NextSteps) == 0 {
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "Next steps:")
	for _, step := range sum.NextSteps {
		fmt.Fprintf(p.w, "  %s\n", p.s.command.Render(step))
	}
}

// Subtle prints a dimmed line.
func (p *Printer) Subtle(text string) {
	fmt.Fprintln(p.w, p.s.subtle.Render(text))
}
