package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to one output so colour is dropped when it is not a
// terminal.
type styles struct {
	header lipgloss.Style
	name   lipgloss.Style
	label  lipgloss.Style
	on     lipgloss.Style
	off    lipgloss.Style
	na     lipgloss.Style
	modded lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")), // pink
		name:   r.NewStyle().Width(28),
		label:  r.NewStyle().Width(24).Foreground(lipgloss.Color("255")),
		on:     r.NewStyle().Width(11).Foreground(lipgloss.Color("86")),  // green
		off:    r.NewStyle().Width(11).Foreground(lipgloss.Color("240")), // dark grey
		na:     r.NewStyle().Width(11).Foreground(lipgloss.Color("236")),
		modded: r.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		dim:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (s styles) flag(can, v bool) string {
	switch {
	case !can:
		return s.na.Render("-")
	case v:
		return s.on.Render("yes")
	default:
		return s.off.Render("no")
	}
}
