package form

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the form and its trigger.
type Styles struct {
	Modal         lipgloss.Style
	Title         lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
}

// DefaultStyles matches the application palette: grayscale with a teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}

	return Styles{
		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Label: lipgloss.NewStyle().
			Foreground(subtle),

		LabelFocused: lipgloss.NewStyle().
			Foreground(accent),

		Button: lipgloss.NewStyle().
			Foreground(primary).
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(accent).
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
