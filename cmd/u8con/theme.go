package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme styles the human-readable output of info.
type Theme struct {
	Name    string
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Good    lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns a colored theme rendering for w. lipgloss drops the
// colors itself when w is not a color terminal.
func DefaultTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Name:    "default",
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Label:   r.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Value:   r.NewStyle(),
		Good:    r.NewStyle().Foreground(lipgloss.Color("34")), // green
		Muted:   r.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// MonoTheme returns a theme without colors or attributes.
func MonoTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	plain := r.NewStyle()
	return Theme{
		Name:    "mono",
		Heading: plain,
		Label:   plain,
		Value:   plain,
		Good:    plain,
		Muted:   plain,
	}
}

func (c *cli) theme() Theme {
	if c.cfg.NoColor {
		return MonoTheme(c.stdout)
	}
	return DefaultTheme(c.stdout)
}
