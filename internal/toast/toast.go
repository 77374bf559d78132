// Package toast shows one transient, dismissible notification at a time.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind selects the styling of a toast.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

// Action is the dismiss control shown next to a toast.
type Action struct {
	Key   string // e.g. "Esc"
	Label string // e.g. "Close"
}

// Toast is a single notification.
type Toast struct {
	Kind        Kind
	Title       string
	Description string
	Action      *Action // nil = no action hint
}

// ShowMsg asks the toast model to display a toast.
type ShowMsg struct {
	Toast Toast
}

// DismissMsg asks the toast model to hide the current toast.
type DismissMsg struct{}

// expireMsg fires when a toast's display time runs out.
type expireMsg struct {
	seq int
}

// Show returns a command that displays t.
func Show(t Toast) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Toast: t} }
}

// Dismiss returns a command that hides the current toast.
func Dismiss() tea.Cmd {
	return func() tea.Msg { return DismissMsg{} }
}

// NewError builds an error toast with a Close action bound to Esc.
func NewError(title, description string) Toast {
	return Toast{
		Kind:        Error,
		Title:       title,
		Description: description,
		Action:      &Action{Key: "Esc", Label: "Close"},
	}
}

// Model holds the currently visible toast, if any.
type Model struct {
	current  *Toast
	seq      int
	duration time.Duration
}

// New creates a toast model whose toasts expire after duration.
func New(duration time.Duration) Model {
	return Model{duration: duration}
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.current != nil
}

// Current returns the visible toast, or nil.
func (m Model) Current() *Toast {
	return m.current
}

// Update handles ShowMsg, DismissMsg and expiry ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		t := msg.Toast
		m.current = &t
		m.seq++
		seq := m.seq
		return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
			return expireMsg{seq: seq}
		})

	case DismissMsg:
		m.current = nil

	case expireMsg:
		// A newer toast replaced the one this tick belonged to
		if msg.seq == m.seq {
			m.current = nil
		}
	}
	return m, nil
}

var (
	titleColors = map[Kind]lipgloss.AdaptiveColor{
		Info:    {Light: "#4A7070", Dark: "#5F8787"},
		Success: {Light: "#338833", Dark: "#66CC66"},
		Warning: {Light: "#CC8800", Dark: "#FFAA00"},
		Error:   {Light: "#CC3333", Dark: "#FF6666"},
	}
	prefixes = map[Kind]string{
		Info:    "",
		Success: "✓ ",
		Warning: "⚠ ",
		Error:   "✗ ",
	}
	subtle = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
)

// View renders the visible toast on one line, or "" when none is showing.
func (m Model) View() string {
	if m.current == nil {
		return ""
	}
	t := m.current

	line := lipgloss.NewStyle().
		Foreground(titleColors[t.Kind]).
		Bold(true).
		Render(prefixes[t.Kind] + t.Title)

	if t.Description != "" {
		line += " " + lipgloss.NewStyle().Foreground(titleColors[t.Kind]).Render(t.Description)
	}
	if t.Action != nil {
		line += "  " + lipgloss.NewStyle().Foreground(subtle).Render(t.Action.Key+" "+t.Action.Label)
	}
	return line
}
