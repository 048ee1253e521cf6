package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#005FAF") // Wavecheck blue
	passColor    = lipgloss.Color("#00AA00") // Green
	failColor    = lipgloss.Color("#A40000") // Red
	mutedColor   = lipgloss.Color("#888888") // Gray
	textColor    = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	PassStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(passColor)

	FailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// RenderStatus renders a PASS or FAIL tag with the matching style.
func RenderStatus(passed bool) string {
	if passed {
		return PassStyle.Render("PASS")
	}
	return FailStyle.Render("FAIL")
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("Wavecheck 🌊"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}
