package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

type styles struct {
	title   lipgloss.Style
	box     lipgloss.Style
	label   lipgloss.Style
	subtle  lipgloss.Style
	command lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(colorPurple).
			Bold(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 2),
		label:   r.NewStyle().Foreground(colorGray),
		subtle:  r.NewStyle().Foreground(colorGray),
		command: r.NewStyle().Foreground(colorCyan).Bold(true),
		ok:      r.NewStyle().Foreground(colorGreen),
		warn:    r.NewStyle().Foreground(colorYellow).Bold(true),
		fail:    r.NewStyle().Foreground(colorRed).Bold(true),
	}
}
