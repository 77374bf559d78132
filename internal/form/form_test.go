package form_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/marks/internal/form"
	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/state"
	"github.com/nikbrunner/marks/internal/toast"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

// harness wires a form to fresh shared state and records notifications.
type harness struct {
	shared  state.Shared
	toasts  []toast.Toast
	logs    *observer.ObservedLogs
	form    form.Form
	lastCmd tea.Cmd
}

func newHarness(t *testing.T, seed ...model.Bookmark) *harness {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	h := &harness{shared: state.NewShared(seed), logs: logs}
	h.form = form.New(form.Params{
		Open:      h.shared.DialogOpen,
		Bookmarks: h.shared.Bookmarks,
		Notify: func(tt toast.Toast) tea.Cmd {
			h.toasts = append(h.toasts, tt)
			return toast.Show(tt)
		},
		Logger: logger.Wrap(zap.New(core)),
	})
	return h
}

func (h *harness) open() {
	h.form, h.lastCmd = h.form.Open()
}

func (h *harness) send(msg tea.Msg) {
	h.form, h.lastCmd = h.form.Update(msg)
}

func (h *harness) press(keyType tea.KeyType) {
	h.send(tea.KeyMsg{Type: keyType})
}

func (h *harness) typeText(text string) {
	if text == "" {
		return
	}
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// fill types the three values, moving focus with Tab, and leaves focus on
// the category input.
func (h *harness) fill(url, name, category string) {
	h.typeText(url)
	h.press(tea.KeyTab)
	h.typeText(name)
	h.press(tea.KeyTab)
	h.typeText(category)
}

func TestOpen_SetsFlagAndFocusesURL(t *testing.T) {
	h := newHarness(t)
	assert.Assert(t, !h.form.IsOpen())

	h.open()

	assert.Assert(t, h.shared.DialogOpen.Get())
	assert.Equal(t, h.form.Focused(), form.FieldURL)
	assert.Equal(t, h.form.Values(), form.Values{})
}

func TestOpen_ClearsPreviousInput(t *testing.T) {
	h := newHarness(t)
	h.open()
	h.fill("example.com", "Example", "Docs")
	h.press(tea.KeyEnter) // invalid, stays open

	h.open()
	assert.Equal(t, h.form.Values(), form.Values{})
}

func TestSubmit_ValidInputAppendsAndCloses(t *testing.T) {
	h := newHarness(t)
	h.open()
	h.fill("https://example.com", "Example", "Docs")

	h.press(tea.KeyEnter)

	assert.DeepEqual(t, h.shared.Bookmarks.Get(), []model.Bookmark{
		{Name: "Example", URL: "https://example.com", Category: "Docs"},
	})
	assert.Assert(t, !h.shared.DialogOpen.Get())
	assert.Check(t, is.Len(h.toasts, 0))
	assert.Equal(t, h.form.View(), "")
}

func TestSubmit_AppendsAfterExistingEntries(t *testing.T) {
	existing := model.Bookmark{Name: "Go", URL: "https://go.dev", Category: "Lang"}
	h := newHarness(t, existing)
	before := h.shared.Bookmarks.Get()

	h.open()
	h.fill("https://go.dev", "Go again", "Lang")
	h.press(tea.KeyEnter)

	got := h.shared.Bookmarks.Get()
	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[0], existing)
	assert.Equal(t, got[1], model.Bookmark{Name: "Go again", URL: "https://go.dev", Category: "Lang"})
	assert.DeepEqual(t, before, []model.Bookmark{existing})
}

func TestSubmit_InvalidInputLeavesStateUnchanged(t *testing.T) {
	existing := model.Bookmark{Name: "Go", URL: "https://go.dev", Category: "Lang"}

	tests := []struct {
		name                 string
		url, title, category string
	}{
		{"missing scheme", "example.com", "Example", "Docs"},
		{"empty name", "https://example.com", "", "Docs"},
		{"empty category", "https://example.com", "Example", ""},
		{"http scheme", "http://example.com", "Example", "Docs"},
		{"all empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, existing)
			h.open()
			h.fill(tt.url, tt.title, tt.category)

			h.press(tea.KeyEnter)

			assert.DeepEqual(t, h.shared.Bookmarks.Get(), []model.Bookmark{existing})
			assert.Assert(t, h.shared.DialogOpen.Get())
			assert.Equal(t, len(h.toasts), 1)
			assert.Equal(t, h.toasts[0].Kind, toast.Error)
			assert.Equal(t, h.toasts[0].Title, form.ErrorTitle)
			assert.Equal(t, h.toasts[0].Description, form.ErrorDescription)
			assert.Equal(t, h.toasts[0].Action.Label, "Close")

			// The returned command delivers the toast to the host
			_, ok := h.lastCmd().(toast.ShowMsg)
			assert.Assert(t, ok)
		})
	}
}

func TestSubmit_InvalidInputIsLogged(t *testing.T) {
	h := newHarness(t)
	h.open()
	h.fill("example.com", "", "Docs")
	h.press(tea.KeyEnter)

	entries := h.logs.FilterMessage("bookmark validation failed").All()
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].Level, zapcore.ErrorLevel)
	assert.Assert(t, strings.Contains(entries[0].ContextMap()["error"].(string), "url must start with https://"))
	assert.DeepEqual(t, entries[0].ContextMap()["fields"], []interface{}{"url", "name"})
}

func TestSubmit_RepeatedFailureIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.open()
	h.fill("example.com", "Example", "Docs")

	h.press(tea.KeyEnter)
	h.press(tea.KeyEnter)

	assert.Equal(t, len(h.shared.Bookmarks.Get()), 0)
	assert.Assert(t, h.shared.DialogOpen.Get())
	assert.Equal(t, len(h.toasts), 2)
	assert.Equal(t, h.form.Values(), form.Values{URL: "example.com", Name: "Example", Category: "Docs"})
}

func TestSubmit_CorrectAfterFailure(t *testing.T) {
	h := newHarness(t)
	h.open()
	h.fill("example.com", "Example", "Docs")
	h.press(tea.KeyEnter)

	// Back to URL input and fix it
	h.press(tea.KeyShiftTab)
	h.press(tea.KeyShiftTab)
	assert.Equal(t, h.form.Focused(), form.FieldURL)
	h.press(tea.KeyHome)
	h.typeText("https://")
	h.press(tea.KeyEnter)

	assert.DeepEqual(t, h.shared.Bookmarks.Get(), []model.Bookmark{
		{Name: "Example", URL: "https://example.com", Category: "Docs"},
	})
	assert.Assert(t, !h.shared.DialogOpen.Get())
}

func TestSubmit_TwoSuccessiveAdds(t *testing.T) {
	h := newHarness(t)

	h.open()
	h.fill("https://one.example", "One", "A")
	h.press(tea.KeyEnter)

	h.open()
	h.fill("https://two.example", "Two", "B")
	h.press(tea.KeyEnter)

	assert.DeepEqual(t, h.shared.Bookmarks.Get(), []model.Bookmark{
		{Name: "One", URL: "https://one.example", Category: "A"},
		{Name: "Two", URL: "https://two.example", Category: "B"},
	})
}

func TestEnter_FromEveryInputMatchesButton(t *testing.T) {
	inputs := []struct {
		url, name, category string
	}{
		{"https://example.com", "Example", "Docs"},
		{"example.com", "Example", "Docs"},
	}

	for _, in := range inputs {
		var outcomes [][]model.Bookmark
		var opens []bool

		for focus := form.FieldURL; focus <= form.FieldSubmit; focus++ {
			h := newHarness(t)
			h.open()
			h.fill(in.url, in.name, in.category)

			// Move focus from category to the target field
			for h.form.Focused() != focus {
				h.press(tea.KeyTab)
			}
			h.press(tea.KeyEnter)

			outcomes = append(outcomes, h.shared.Bookmarks.Get())
			opens = append(opens, h.shared.DialogOpen.Get())
		}

		for i := 1; i < len(outcomes); i++ {
			assert.DeepEqual(t, outcomes[i], outcomes[0])
			assert.Equal(t, opens[i], opens[0])
		}
	}
}

func TestFocus_Cycles(t *testing.T) {
	h := newHarness(t)
	h.open()

	want := []form.Field{form.FieldName, form.FieldCategory, form.FieldSubmit, form.FieldURL}
	for _, f := range want {
		h.press(tea.KeyTab)
		assert.Equal(t, h.form.Focused(), f)
	}

	h.press(tea.KeyShiftTab)
	assert.Equal(t, h.form.Focused(), form.FieldSubmit)
}

func TestTyping_OnButtonIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.open()
	h.press(tea.KeyShiftTab)
	assert.Equal(t, h.form.Focused(), form.FieldSubmit)

	h.typeText("ignored")
	assert.Equal(t, h.form.Values(), form.Values{})
}

func TestEsc_DismissesToastWithoutClosing(t *testing.T) {
	h := newHarness(t)
	h.open()

	h.press(tea.KeyEsc)

	assert.Assert(t, h.shared.DialogOpen.Get())
	_, ok := h.lastCmd().(toast.DismissMsg)
	assert.Assert(t, ok)
}

func TestUpdate_ClosedFormIgnoresKeys(t *testing.T) {
	h := newHarness(t)

	h.typeText("https://example.com")
	h.press(tea.KeyEnter)

	assert.Assert(t, !h.shared.DialogOpen.Get())
	assert.Equal(t, len(h.shared.Bookmarks.Get()), 0)
	assert.Check(t, is.Len(h.toasts, 0))
	assert.Equal(t, h.form.Values(), form.Values{})
}

func TestSubmit_ClosedFormIsNoop(t *testing.T) {
	h := newHarness(t)
	h.form, _ = h.form.Submit()

	assert.Equal(t, len(h.shared.Bookmarks.Get()), 0)
	assert.Check(t, is.Len(h.toasts, 0))
}

func TestTriggerLabel(t *testing.T) {
	assert.Equal(t, form.TriggerLabel(true), "Add Bookmark ⌘K")
	assert.Equal(t, form.TriggerLabel(false), "Add Bookmark Ctrl+K")

	h := newHarness(t)
	assert.Equal(t, h.form.TriggerLabel(), "Add Bookmark Ctrl+K")
}

func TestView_RendersFields(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.open()

	view := layout.StripANSI(h.form.View())
	for _, want := range []string{"Bookmark Info", "URL:", "Name:", "Category:", "Add Bookmark", "Enter add"} {
		assert.Assert(t, strings.Contains(view, want), "missing %q in view:\n%s", want, view)
	}
}
