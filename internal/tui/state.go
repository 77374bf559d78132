package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/marks/internal/tui/layout"
)

// Mode is the input mode of the browse view.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter      // typing into the filter input
)

// Pane identifies the focused column.
type Pane int

const (
	PaneCategories Pane = iota
	PaneBookmarks
)

// FilterState holds the fuzzy filter over the selected category.
type FilterState struct {
	Input textinput.Model
	Query string // applied query, "" = no filter
}

// NewFilterState creates a FilterState with a configured input.
func NewFilterState(cfg layout.LayoutConfig) FilterState {
	input := textinput.New()
	input.Placeholder = "filter..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth
	input.Prompt = ""

	return FilterState{Input: input}
}

// Reset clears the query and the input.
func (f *FilterState) Reset() {
	f.Query = ""
	f.Input.Reset()
	f.Input.Blur()
}

// Cursors tracks the selected row of each list pane.
type Cursors struct {
	Category int
	Bookmark int
}
