package tui

import "github.com/charmbracelet/lipgloss"

const (
	titleFGColor  = "#e0e0e0"
	paramFGColor  = "#a0a0a0"
	axisFGColor   = "#707070"
	statusFGColor = "#9a9a9a"
	errorFGColor  = "#ff5f5f"
	warnFGColor   = "#f5c542"
	okFGColor     = "#5fd75f"
)

var (
	appStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleFGColor))
	paramStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(paramFGColor))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(axisFGColor))
	plotStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(statusFGColor))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(errorFGColor))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(warnFGColor))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(okFGColor))
)
