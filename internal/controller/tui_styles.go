package controller

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

	okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// kindStyle colors a value by its kind.
var kindStyle = map[string]lipgloss.Style{
	"integer": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"float":   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	"boolean": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"string":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}
