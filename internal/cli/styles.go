package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/kittyconf/internal/catalog"
)

// Color palette for CLI output.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// SuccessStyle is for positive outcomes.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// ErrorStyle is for errors.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// KeyStyle is for setting keys and commands.
	KeyStyle = lipgloss.NewStyle().Foreground(ColorHighlight)

	// ChangedStyle marks values that differ from the default.
	ChangedStyle = lipgloss.NewStyle().Bold(true)
)

// swatch renders a two-cell block in color hex, or "" when hex is not a
// color.
func swatch(hex string) string {
	if _, err := catalog.ParseColor(hex); err != nil {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
