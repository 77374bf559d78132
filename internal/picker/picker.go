// Package picker lets the user choose one bookmark out of several search
// results.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"})

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)
)

// KeyMap defines the picker bindings.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default picker bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
		Up:     key.NewBinding(key.WithKeys("k", "up")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/Esc", "cancel")),
	}
}

// Picker is a list of search results with a cursor.
type Picker struct {
	results   []search.Result
	query     string
	keys      KeyMap
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker over results.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Select):
			p.selected = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}

		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	for i, result := range p.results {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		fmt.Fprintf(&b, "%s%s\n", cursor, style.Render(result.Bookmark.Name))
		fmt.Fprintf(&b, "   %s\n", detailStyle.Render(result.Bookmark.Category+" · "+result.Bookmark.URL))
	}

	b.WriteString("\n")
	b.WriteString(detailStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// Cursor returns the highlighted row.
func (p Picker) Cursor() int {
	return p.cursor
}

// SelectedBookmark returns the chosen bookmark, or false if the picker was
// cancelled or nothing was chosen.
func (p Picker) SelectedBookmark() (model.Bookmark, bool) {
	if p.cancelled || !p.selected || p.cursor >= len(p.results) {
		return model.Bookmark{}, false
	}
	return p.results[p.cursor].Bookmark, true
}

// Cancelled reports whether the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
