package styles

import (
	"litedata/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles for one display mode.
type Styles struct {
	App            lipgloss.Style
	Title          lipgloss.Style
	Label          lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style
	Focused        lipgloss.Style
	Disabled       lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Help           lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Notice         lipgloss.Style
	TableHeader    lipgloss.Style
	TableCell      lipgloss.Style
	Border         lipgloss.Color
}

// New builds styles from a palette.
func New(p config.Palette) Styles {
	border := lipgloss.Color(p.Border)
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2).
			Foreground(lipgloss.Color(p.Text)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Primary)).
			Padding(0, 1),
		Disabled: lipgloss.NewStyle().
			Foreground(border).
			Strikethrough(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Secondary)).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Background(border).
			Padding(0, 2),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)).
			Padding(0, 1),
		TableCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),
		Border: border,
	}
}

// Default returns the light styles of the default configuration.
func Default() Styles {
	return New(config.New().Theme.Light)
}
