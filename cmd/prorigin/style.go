package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles of the text output. Colors are dropped when w is not a terminal.
type styles struct {
	sha1  lipgloss.Style
	label lipgloss.Style
}

func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)
	return styles{
		sha1:  renderer.NewStyle().Foreground(lipgloss.Color("3")),
		label: renderer.NewStyle().Faint(true),
	}
}
