package bubble_tea

import (
	"github.com/charmbracelet/lipgloss"

	"ecdhprobe/domain/rendering"
)

type probeStyles struct {
	header   lipgloss.Style
	hint     lipgloss.Style
	prompt   lipgloss.Style
	regular  lipgloss.Style
	emphasis lipgloss.Style
	alert    lipgloss.Style
}

func newProbeStyles(colored bool) probeStyles {
	if !colored {
		plain := lipgloss.NewStyle()
		return probeStyles{
			header:   plain,
			hint:     plain,
			prompt:   plain,
			regular:  plain,
			emphasis: plain,
			alert:    plain,
		}
	}
	return probeStyles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		hint:     lipgloss.NewStyle().Faint(true),
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		regular:  lipgloss.NewStyle(),
		emphasis: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		alert:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func (s probeStyles) forRow(style rendering.Style) lipgloss.Style {
	switch style {
	case rendering.StyleAlert:
		return s.alert
	case rendering.StyleEmphasis:
		return s.emphasis
	default:
		return s.regular
	}
}
