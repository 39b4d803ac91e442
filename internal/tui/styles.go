package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	DangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	DocStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Status renders a check result line.
func Status(ok bool, label, detail string) string {
	mark, style := "✓", OKStyle
	if !ok {
		mark, style = "✗", DangerStyle
	}
	line := style.Render(mark) + " " + label
	if detail != "" {
		line += " " + MutedStyle.Render(detail)
	}
	return line
}

// Warn renders a warning line.
func Warn(label, detail string) string {
	line := WarningStyle.Render("⚠") + " " + label
	if detail != "" {
		line += " " + MutedStyle.Render(detail)
	}
	return line
}
