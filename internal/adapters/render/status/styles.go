package status

import "github.com/charmbracelet/lipgloss"

const (
	barWidth     = 24
	barFillColor = "159"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	open     lipgloss.Style
	closed   lipgloss.Style
	overtime lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	meta     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(10),
		value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		open:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		closed:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		overtime: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
