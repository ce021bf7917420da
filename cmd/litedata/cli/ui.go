// Package cli holds the terminal output helpers shared by the commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2e7d32"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d32f2f"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9a825"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#284b63"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3c6e71")).Bold(true)
	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3c6e71"))
)

// Out is where the helpers print. Tests swap it.
var Out io.Writer = os.Stdout

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintln(Out, successStyle.Render("✓ "+message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(Out, errorStyle.Render("✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintln(Out, warningStyle.Render("! "+message))
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Fprintln(Out, infoStyle.Render("ℹ "+message))
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	fmt.Fprintln(Out, "\n"+headerStyle.Render(message))
	fmt.Fprintln(Out, strings.Repeat("─", lipgloss.Width(message)))
}

// DrawLogo generates the ASCII art logo.
func DrawLogo() string {
	logo := `
 _      _ _         ____        _
| |    (_) |_ ___  |  _ \  __ _| |_ __ _
| |    | | __/ _ \ | | | |/ _' | __/ _' |
| |___ | | ||  __/ | |_| | (_| | || (_| |
|_____||_|\__\___| |____/ \__,_|\__\__,_|
`
	return logoStyle.Render(logo)
}
