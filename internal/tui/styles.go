package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/orderchat/internal/config"
	"github.com/muurk/orderchat/internal/version"
)

// Application branding constants
const (
	AppName = "ORDERCHAT"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	MinWidth      = 40
	InputWidth    = 40
)

// Neutral colors shared by both screens
var (
	TextColor   = lipgloss.Color("#FFFFFF")
	InkColor    = lipgloss.Color("#000000")
	SubtleColor = lipgloss.Color("#626262")
	ErrorColor  = lipgloss.Color("#FF5555")
)

// Styles holds the theme-dependent styles for one program run.
type Styles struct {
	FormAccent   lipgloss.Color
	ChatAccent   lipgloss.Color
	SubmitButton lipgloss.Color
	ChatButton   lipgloss.Color
	BackButton   lipgloss.Color

	Heading lipgloss.Style
	Label   lipgloss.Style
	Bubble  lipgloss.Style
	Text    lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles builds styles from a configured theme.
func NewStyles(theme config.Theme) Styles {
	s := Styles{
		FormAccent:   lipgloss.Color(theme.FormAccent),
		ChatAccent:   lipgloss.Color(theme.ChatAccent),
		SubmitButton: lipgloss.Color(theme.SubmitButton),
		ChatButton:   lipgloss.Color(theme.ChatButton),
		BackButton:   lipgloss.Color(theme.BackButton),
	}

	s.Heading = lipgloss.NewStyle().
		Foreground(s.FormAccent).
		Bold(true).
		MarginBottom(1)

	s.Label = lipgloss.NewStyle().
		Foreground(TextColor)

	// Chat message bubble
	s.Bubble = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ChatAccent).
		Padding(0, 1).
		MarginBottom(1)

	s.Text = lipgloss.NewStyle().
		Foreground(TextColor)

	s.Help = lipgloss.NewStyle().
		Foreground(SubtleColor)

	return s
}

// DefaultStyles returns styles for the stock theme.
func DefaultStyles() Styles {
	return NewStyles(config.DefaultTheme())
}

// RenderButton renders a button; the focused one is filled with its colour.
func RenderButton(label string, color lipgloss.Color, focused bool) string {
	style := lipgloss.NewStyle().Padding(0, 2)
	if focused {
		return style.
			Background(color).
			Foreground(TextColor).
			Bold(true).
			Render("▸ " + label)
	}
	return style.
		Foreground(color).
		Render("  " + label)
}

// RenderMenuItem renders a menu item with selection indicator
func RenderMenuItem(text string, color lipgloss.Color, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Foreground(color).
			Bold(true).
			Render("→ " + text)
	}
	return lipgloss.NewStyle().
		Foreground(TextColor).
		Render("  " + text)
}

// RenderApplicationContainer wraps a screen with the header, border and help
// footer. accent colours the border so each screen is recognisable.
func RenderApplicationContainer(content string, footerText string, accent lipgloss.Color, width int, height int) string {
	if width < MinWidth {
		width = MinWidth
	}
	if height < 10 {
		height = 10
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(AppName),
		" ",
		lipgloss.NewStyle().Foreground(SubtleColor).Render("v"+AppVersion()),
	)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(accent).
		Width(width-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(accent).
		Width(width-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(width-4).
		Padding(1, 2)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Width(width - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderModal centers modalContent over the screen.
func RenderModal(modalContent string, width int, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
