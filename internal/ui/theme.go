package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Synss/elogviewer/internal/elog"
)

// Theme defines colors for terminal output.
type Theme struct {
	Name string

	Text   string
	Muted  string
	Accent string

	// SeverityColors overrides the core severity palette, keyed by
	// severity name. Missing entries fall back to the core defaults.
	SeverityColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		severityColors: t.SeverityColors,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title lipgloss.Style
	Text  lipgloss.Style
	Muted lipgloss.Style

	severityColors map[string]string
}

// SeverityText returns the body text style for the given severity.
func (s Styles) SeverityText(sev elog.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.severityColor(sev)))
}

// SeverityHeader returns the section header style for the given severity.
func (s Styles) SeverityHeader(sev elog.Severity) lipgloss.Style {
	return s.SeverityText(sev).Bold(true)
}

func (s Styles) severityColor(sev elog.Severity) string {
	if color := s.severityColors[sev.String()]; color != "" {
		return color
	}
	return sev.Color()
}

// Theme definitions

var themes = map[string]Theme{
	"Portage":  portageTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Portage", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return portageTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func portageTheme() Theme {
	// No overrides: severity colors come straight from the core table.
	return Theme{
		Name: "Portage",

		Text:   "#D0D0D0",
		Muted:  "#808080",
		Accent: "#719CD6",

		SeverityColors: map[string]string{},
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Accent: "#719cd6", // blue

		SeverityColors: map[string]string{
			"Error":   "#c94f6d", // red
			"Warning": "#dbc074", // yellow
			"Log":     "#81b29a", // green
			"Info":    "#81b29a", // green
			"QA":      "#63cdcf", // cyan
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Accent: "#38bdf8", // sky-400

		SeverityColors: map[string]string{
			"Error":   "#ef4444", // red-500
			"Warning": "#f59e0b", // amber-500
			"Log":     "#22c55e", // green-500
			"Info":    "#22c55e", // green-500
			"QA":      "#06b6d4", // cyan-500
		},
	}
}
