package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - lime accent with conventional warn/fail colors
const (
	ColorLime     = "154" // Pass (#AFFF00)
	ColorLimeDim  = "106" // Check titles
	ColorWhite    = "255" // Headers
	ColorGray     = "245" // Hints, details
	ColorDarkGray = "238" // Separators
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings
	ColorCyan     = "81"  // Informational lines
)

// Styles holds the styles used to render verification output.
type Styles struct {
	Header lipgloss.Style
	Title  lipgloss.Style
	Pass   lipgloss.Style
	Warn   lipgloss.Style
	Fail   lipgloss.Style
	Info   lipgloss.Style
	Hint   lipgloss.Style
	Rule   lipgloss.Style
}

// DefaultStyles returns colored styles for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLimeDim)),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Info:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Rule:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle(),
		Pass:   lipgloss.NewStyle(),
		Warn:   lipgloss.NewStyle(),
		Fail:   lipgloss.NewStyle(),
		Info:   lipgloss.NewStyle(),
		Hint:   lipgloss.NewStyle(),
		Rule:   lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
