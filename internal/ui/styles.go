package ui

import "github.com/charmbracelet/lipgloss"

// Default colors, overridden by the ui.colors config section
var defaultColors = map[string]string{
	"hot":    "#EF4444",
	"cold":   "#3B82F6",
	"stop":   "#D946EF",
	"end":    "#F59E0B",
	"accent": "#7D56F4",
}

// Styles holds the lipgloss styles of the watch view
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Hot    lipgloss.Style
	Cold   lipgloss.Style
	Source lipgloss.Style
	Stop   lipgloss.Style
	End    lipgloss.Style
	Muted  lipgloss.Style
	Panel  lipgloss.Style
	Status lipgloss.Style
}

// NewStyles builds the styles from a color palette. Missing entries fall
// back to the defaults.
func NewStyles(colors map[string]string) Styles {
	pick := func(name string) lipgloss.Color {
		if c, ok := colors[name]; ok && c != "" {
			return lipgloss.Color(c)
		}
		return lipgloss.Color(defaultColors[name])
	}
	accent := pick("accent")

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accent).
			Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Hot:    lipgloss.NewStyle().Foreground(pick("hot")).Bold(true),
		Cold:   lipgloss.NewStyle().Foreground(pick("cold")),
		Source: lipgloss.NewStyle().Foreground(pick("hot")).Underline(true).Bold(true),
		Stop:   lipgloss.NewStyle().Foreground(pick("stop")).Bold(true),
		End:    lipgloss.NewStyle().Foreground(pick("end")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Italic(true),
	}
}
