// Package form implements the modal dialog that adds a bookmark to the
// shared collection.
//
// The form owns only its input state. The open flag and the bookmark
// collection belong to the host and are passed in as state.Cell handles.
// The dialog has two states: Open -> Closed happens only when a submission
// validates, Closed -> Open only through Open.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/state"
	"github.com/nikbrunner/marks/internal/toast"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

// Notification text shown for any validation failure.
const (
	ErrorTitle       = "Invalid bookmark data"
	ErrorDescription = "All fields must be written, and the URL must start with https://"
)

// Field identifies one of the form inputs, in display order.
type Field int

const (
	FieldURL Field = iota
	FieldName
	FieldCategory
	// FieldSubmit is the "Add Bookmark" button.
	FieldSubmit
)

const inputCount = int(FieldSubmit)

// Values is a snapshot of the three inputs.
type Values struct {
	URL      string
	Name     string
	Category string
}

// Params holds parameters for creating a new Form.
type Params struct {
	Open      *state.Cell[bool]
	Bookmarks *state.Cell[[]model.Bookmark]
	IsMac     bool

	Notify       func(toast.Toast) tea.Cmd // optional, uses toast.Show if nil
	Logger       logger.Logger             // optional, discards if nil
	Keys         *KeyMap                   // optional, uses default if nil
	Styles       *Styles                   // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig      // optional, uses default if nil
}

// Form is the bookmark entry dialog.
type Form struct {
	open      *state.Cell[bool]
	bookmarks *state.Cell[[]model.Bookmark]
	isMac     bool

	notify func(toast.Toast) tea.Cmd
	log    logger.Logger
	keys   KeyMap
	styles Styles
	cfg    layout.LayoutConfig

	inputs  [inputCount]textinput.Model
	focused Field
	width   int
}

// New creates a Form bound to the given shared state.
func New(params Params) Form {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}

	notify := params.Notify
	if notify == nil {
		notify = toast.Show
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNop()
	}

	f := Form{
		open:      params.Open,
		bookmarks: params.Bookmarks,
		isMac:     params.IsMac,
		notify:    notify,
		log:       log,
		keys:      keys,
		styles:    styles,
		cfg:       cfg,
		width:     80,
	}

	f.inputs[FieldURL] = newInput("URL", cfg.Input.URLCharLimit, cfg.Input.StandardWidth)
	f.inputs[FieldName] = newInput("Name", cfg.Input.NameCharLimit, cfg.Input.StandardWidth)
	f.inputs[FieldCategory] = newInput("Category", cfg.Input.CategoryCharLimit, cfg.Input.StandardWidth)

	return f
}

func newInput(placeholder string, charLimit, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = width
	input.Prompt = ""
	return input
}

// IsOpen reports the shared open flag.
func (f Form) IsOpen() bool {
	return f.open.Get()
}

// Focused returns the focused field.
func (f Form) Focused() Field {
	return f.focused
}

// Values returns the current input contents.
func (f Form) Values() Values {
	return Values{
		URL:      f.inputs[FieldURL].Value(),
		Name:     f.inputs[FieldName].Value(),
		Category: f.inputs[FieldCategory].Value(),
	}
}

// TriggerLabel is the text of the control that opens the form.
func (f Form) TriggerLabel() string {
	return TriggerLabel(f.isMac)
}

// TriggerLabel returns the trigger text with the platform's shortcut hint.
func TriggerLabel(isMac bool) string {
	if isMac {
		return "Add Bookmark ⌘K"
	}
	return "Add Bookmark Ctrl+K"
}

// Open sets the open flag and shows the form with empty inputs and the
// URL input focused.
func (f Form) Open() (Form, tea.Cmd) {
	f.open.Set(true)
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	return f.focus(FieldURL)
}

// Submit validates the current input. A valid bookmark is appended to the
// shared collection and the form closes; otherwise nothing changes, an
// error toast is requested and the failure is logged.
func (f Form) Submit() (Form, tea.Cmd) {
	if !f.IsOpen() {
		return f, nil
	}

	v := f.Values()
	candidate := model.Bookmark{Name: v.Name, URL: v.URL, Category: v.Category}
	if err := candidate.Validate(); err != nil {
		f.log.Error("bookmark validation failed",
			logger.Error(err),
			logger.Strings("fields", candidate.InvalidFields()),
		)
		return f, f.notify(toast.NewError(ErrorTitle, ErrorDescription))
	}

	state.Append(f.bookmarks, candidate)
	f.open.Set(false)
	f.blurAll()
	f.log.Debug("bookmark added",
		logger.String("category", candidate.Category),
		logger.Int("total", len(f.bookmarks.Get())),
	)
	return f, nil
}

// Update handles input while the form is open. Enter submits from any
// input or from the button; Tab/Shift+Tab move focus.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		f.width = size.Width
		return f, nil
	}

	if !f.IsOpen() {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Submit):
			return f.Submit()

		case key.Matches(keyMsg, f.keys.Next):
			return f.focus((f.focused + 1) % (FieldSubmit + 1))

		case key.Matches(keyMsg, f.keys.Prev):
			return f.focus((f.focused + FieldSubmit) % (FieldSubmit + 1))

		case key.Matches(keyMsg, f.keys.Dismiss):
			return f, toast.Dismiss()
		}
	}

	if f.focused == FieldSubmit {
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

func (f Form) focus(field Field) (Form, tea.Cmd) {
	f.blurAll()
	f.focused = field
	if field == FieldSubmit {
		return f, nil
	}
	cmd := f.inputs[field].Focus()
	return f, cmd
}

func (f *Form) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

var fieldLabels = [inputCount]string{"URL", "Name", "Category"}

// View renders the dialog, or "" when it is closed.
func (f Form) View() string {
	if !f.IsOpen() {
		return ""
	}

	var content strings.Builder

	content.WriteString(f.styles.Title.Render("Bookmark Info"))
	content.WriteString("\n\n")

	for i := range f.inputs {
		label := f.styles.Label
		if Field(i) == f.focused {
			label = f.styles.LabelFocused
		}
		content.WriteString(label.Render(fieldLabels[i] + ":"))
		content.WriteString("\n")
		content.WriteString(f.inputs[i].View())
		content.WriteString("\n\n")
	}

	button := f.styles.Button
	if f.focused == FieldSubmit {
		button = f.styles.ButtonFocused
	}
	content.WriteString(button.Render("Add Bookmark"))
	content.WriteString("\n\n")
	content.WriteString(f.renderHints())

	modalWidth := layout.CalculateModalWidth(f.width, f.cfg.Modal.DefaultWidthPercent, f.cfg.Modal)
	return f.styles.Modal.Width(modalWidth).Render(content.String())
}

func (f Form) renderHints() string {
	bindings := []key.Binding{f.keys.Submit, f.keys.Next, f.keys.Dismiss}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = f.styles.HintKey.Render(h.Key) + " " + f.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}
