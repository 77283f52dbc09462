package ui

import "github.com/charmbracelet/lipgloss"

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// OK renders the success marker printed after a check label.
func OK() string {
	return okStyle.Render("OK")
}

// Error renders the failure marker printed after a check label.
func Error() string {
	return errorStyle.Render("ERROR")
}
