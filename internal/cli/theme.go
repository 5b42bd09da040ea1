package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the terminal appearance of the interactive host.
type Theme struct {
	HighlightColor lipgloss.Color // Selected screen, top of a stack
	AccentColor    lipgloss.Color // Titles, modal border
	TextColor      lipgloss.Color // Default text color
	HintColor      lipgloss.Color // Help text, status line
	AlertColor     lipgloss.Color // Alert border and title
}

// defaultTheme uses the Cannoli palette.
func defaultTheme() Theme {
	return Theme{
		HighlightColor: hexToColor(0xFFFFFF),
		AccentColor:    hexToColor(0x008080),
		TextColor:      lipgloss.Color("252"),
		HintColor:      lipgloss.Color("240"),
		AlertColor:     lipgloss.Color("167"),
	}
}

// themeFromConfig applies configured overrides to the default theme.
func themeFromConfig(cfg ThemeConfig) (Theme, error) {
	theme := defaultTheme()
	if cfg.Accent == "" {
		return theme, nil
	}
	hex, err := parseHex(cfg.Accent)
	if err != nil {
		return theme, err
	}
	theme.AccentColor = hexToColor(hex)
	return theme, nil
}

func hexToColor(hex uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", hex&0xFFFFFF))
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return uint32(v), nil
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.AccentColor)
}

func (t Theme) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextColor)
}

func (t Theme) top() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.HighlightColor)
}

func (t Theme) hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.HintColor)
}

func (t Theme) stack(active bool) lipgloss.Style {
	border := t.HintColor
	if active {
		border = t.AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func (t Theme) alert() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.AlertColor).
		Padding(0, 1)
}
