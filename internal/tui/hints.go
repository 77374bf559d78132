package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "add")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar.
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint
	Action []Hint
	System []Hint
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the hints for the current mode.
func (a App) getContextualHints() HintSet {
	if a.form.IsOpen() {
		// The form renders its own hints inside the modal
		return HintSet{System: []Hint{{Key: "ctrl+c", Desc: "quit"}}}
	}

	if a.mode == ModeFilter {
		return HintSet{
			Action: []Hint{
				{Key: "Enter", Desc: "apply"},
				{Key: "Esc", Desc: "clear"},
			},
		}
	}

	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "h/l", Desc: "pane"},
		},
		Action: []Hint{
			{Key: "a", Desc: "add"},
			{Key: "/", Desc: "filter"},
		},
		System: []Hint{
			{Key: "q", Desc: "quit"},
		},
	}
	if _, ok := a.SelectedBookmark(); ok {
		hints.Action = append(hints.Action, Hint{Key: "Y", Desc: "yank"})
	}
	if a.toast.Visible() {
		hints.System = append([]Hint{{Key: "Esc", Desc: "dismiss"}}, hints.System...)
	}
	return hints
}
