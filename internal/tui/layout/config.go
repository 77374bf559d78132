package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + trigger line (1) + pane borders (2) + toast line (1) + hints (1) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// WidthOffset is subtracted before dividing by the pane count.
	// Accounts for borders and spacing between the 3 panes.
	WidthOffset int

	// MinWidth is the minimum width for each pane.
	MinWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	// Accounts for pane border/padding on each side.
	ContentPadding int

	// HeaderLines is the number of title lines at the top of each pane.
	HeaderLines int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit     int
	URLCharLimit      int
	CategoryCharLimit int
	FilterCharLimit   int

	// Display widths
	StandardWidth int // Used for the bookmark form inputs
	FilterWidth   int // Used for filter input (narrower)
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction: 6, // app padding (1) + trigger (1) + pane borders (2) + toast (1) + hints (1)
			MinHeight:       5,
			WidthOffset:     10,
			MinWidth:        20,
			ContentPadding:  4,
			HeaderLines:     2,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            50,
			MaxWidth:            80,
		},
		Input: InputConfig{
			NameCharLimit:     100,
			URLCharLimit:      500,
			CategoryCharLimit: 50,
			FilterCharLimit:   50,
			StandardWidth:     40,
			FilterWidth:       30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
