// Package tui is the interactive bookmark browser. It owns the shared state
// and hosts the entry form, the toast line and persistence.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/marks/internal/form"
	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/search"
	"github.com/nikbrunner/marks/internal/state"
	"github.com/nikbrunner/marks/internal/storage"
	"github.com/nikbrunner/marks/internal/toast"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

const defaultToastDuration = 4 * time.Second

// App is the main bubbletea model for the bookmark manager.
type App struct {
	shared  state.Shared
	form    form.Form
	toast   toast.Model
	storage storage.Storage
	log     logger.Logger
	copyURL func(string) error

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode        Mode
	focusedPane Pane
	cursors     Cursors
	filter      FilterState

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store         *model.Store
	Storage       storage.Storage      // optional, nothing is persisted if nil
	Logger        logger.Logger        // optional, discards if nil
	IsMac         bool                 // selects the trigger shortcut label
	ToastDuration time.Duration        // optional, 4s if zero
	Clipboard     func(string) error   // optional, uses the system clipboard if nil
	Keys          *KeyMap              // optional, uses default if nil
	Styles        *Styles              // optional, uses default if nil
	LayoutConfig  *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
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

	log := params.Logger
	if log == nil {
		log = logger.NewNop()
	}

	copyURL := params.Clipboard
	if copyURL == nil {
		copyURL = clipboard.WriteAll
	}

	toastDuration := params.ToastDuration
	if toastDuration <= 0 {
		toastDuration = defaultToastDuration
	}

	store := params.Store
	if store == nil {
		store = model.NewStore()
	}
	shared := state.NewShared(store.Bookmarks)

	return App{
		shared: shared,
		form: form.New(form.Params{
			Open:         shared.DialogOpen,
			Bookmarks:    shared.Bookmarks,
			IsMac:        params.IsMac,
			Logger:       log,
			LayoutConfig: &cfg,
		}),
		toast:        toast.New(toastDuration),
		storage:      params.Storage,
		log:          log,
		copyURL:      copyURL,
		keys:         keys,
		styles:       styles,
		layoutConfig: cfg,
		filter:       NewFilterState(cfg),
		width:        80,
		height:       24,
	}
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.form, _ = a.form.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return a
}

// Shared returns the state lent to the form.
func (a App) Shared() state.Shared {
	return a.shared
}

// Store returns the current collection in its persisted shape.
func (a App) Store() *model.Store {
	return &model.Store{Bookmarks: a.shared.Bookmarks.Get()}
}

// Form returns the entry form.
func (a App) Form() form.Form {
	return a.form
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// FocusedPane returns the focused column.
func (a App) FocusedPane() Pane {
	return a.focusedPane
}

// Cursors returns the selected rows.
func (a App) Cursors() Cursors {
	return a.cursors
}

// Toast returns the toast model.
func (a App) Toast() toast.Model {
	return a.toast
}

// FilterQuery returns the applied or in-progress filter text.
func (a App) FilterQuery() string {
	return a.filter.Query
}

// Categories returns the categories in first-appearance order.
func (a App) Categories() []string {
	return model.Categories(a.shared.Bookmarks.Get())
}

// SelectedCategory returns the category under the category cursor.
func (a App) SelectedCategory() (string, bool) {
	categories := a.Categories()
	if a.cursors.Category >= len(categories) {
		return "", false
	}
	return categories[a.cursors.Category], true
}

// VisibleBookmarks returns the bookmarks of the selected category, narrowed
// by the filter when one is set.
func (a App) VisibleBookmarks() []model.Bookmark {
	category, ok := a.SelectedCategory()
	if !ok {
		return nil
	}

	inCategory := model.InCategory(a.shared.Bookmarks.Get(), category)
	if a.filter.Query == "" {
		return inCategory
	}

	results := search.FuzzySearch(inCategory, a.filter.Query)
	visible := make([]model.Bookmark, len(results))
	for i, r := range results {
		visible[i] = r.Bookmark
	}
	return visible
}

// SelectedBookmark returns the bookmark under the bookmark cursor.
func (a App) SelectedBookmark() (model.Bookmark, bool) {
	visible := a.VisibleBookmarks()
	if a.cursors.Bookmark >= len(visible) {
		return model.Bookmark{}, false
	}
	return visible[a.cursors.Bookmark], true
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.WithDimensions(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Toast messages, expiry ticks and cursor blinks
	var cmds []tea.Cmd
	var cmd tea.Cmd

	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)

	if a.form.IsOpen() {
		a.form, cmd = a.form.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.mode == ModeFilter {
		a.filter.Input, cmd = a.filter.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.form.IsOpen() {
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		return a.updateForm(msg)
	}

	if a.mode == ModeFilter {
		return a.updateFilter(msg)
	}

	return a.updateNormal(msg)
}

// updateForm routes every key to the open form and reacts to an append.
func (a App) updateForm(msg tea.Msg) (App, tea.Cmd) {
	before := len(a.shared.Bookmarks.Get())

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)

	if len(a.shared.Bookmarks.Get()) > before {
		added := a.bookmarkAdded()
		return a, tea.Batch(cmd, added)
	}
	return a, cmd
}

// bookmarkAdded selects the newest bookmark and persists the collection.
func (a *App) bookmarkAdded() tea.Cmd {
	bookmarks := a.shared.Bookmarks.Get()
	added := bookmarks[len(bookmarks)-1]
	a.selectNewest(added.Category)

	if err := a.saveStore(); err != nil {
		a.log.Error("save bookmarks failed", logger.Error(err))
		return toast.Show(toast.NewError("Save failed", err.Error()))
	}

	a.log.Info("bookmarks saved", logger.Int("count", len(bookmarks)))
	return toast.Show(toast.Toast{
		Kind:        toast.Success,
		Title:       "Bookmark added",
		Description: added.Name,
	})
}

func (a *App) selectNewest(category string) {
	a.filter.Reset()
	a.mode = ModeNormal
	a.focusedPane = PaneBookmarks

	for i, c := range a.Categories() {
		if c == category {
			a.cursors.Category = i
			break
		}
	}
	a.cursors.Bookmark = len(a.VisibleBookmarks()) - 1
}

// saveStore persists the current collection (if storage is configured).
func (a App) saveStore() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Save(a.Store())
}

func (a App) updateFilter(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.mode = ModeNormal
		a.filter.Input.Blur()
		return a, nil

	case tea.KeyEsc:
		a.mode = ModeNormal
		a.filter.Reset()
		a.cursors.Bookmark = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.filter.Input, cmd = a.filter.Input.Update(msg)
	a.filter.Query = a.filter.Input.Value()
	a.cursors.Bookmark = 0
	return a, cmd
}

func (a App) updateNormal(msg tea.KeyMsg) (App, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.setCursor(0)
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Dismiss):
		if a.filter.Query != "" {
			a.filter.Reset()
			a.cursors.Bookmark = 0
			return a, nil
		}
		return a, toast.Dismiss()

	case key.Matches(msg, a.keys.AddBookmark):
		var cmd tea.Cmd
		a.form, cmd = a.form.Open()
		return a, cmd

	case key.Matches(msg, a.keys.Filter):
		if _, ok := a.SelectedCategory(); !ok {
			return a, nil
		}
		a.mode = ModeFilter
		a.focusedPane = PaneBookmarks
		a.cursors.Bookmark = 0
		cmd := a.filter.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.YankURL):
		return a, a.yankURL()

	case key.Matches(msg, a.keys.Down):
		a.setCursor(a.cursor() + 1)

	case key.Matches(msg, a.keys.Up):
		a.setCursor(a.cursor() - 1)

	case key.Matches(msg, a.keys.Bottom):
		a.setCursor(a.paneLen() - 1)

	case key.Matches(msg, a.keys.Right):
		if a.focusedPane == PaneCategories && len(a.VisibleBookmarks()) > 0 {
			a.focusedPane = PaneBookmarks
		}

	case key.Matches(msg, a.keys.Left):
		a.focusedPane = PaneCategories
	}

	return a, nil
}

func (a App) yankURL() tea.Cmd {
	b, ok := a.SelectedBookmark()
	if !ok {
		return nil
	}

	if err := a.copyURL(b.URL); err != nil {
		a.log.Warn("clipboard write failed", logger.Error(err))
		return toast.Show(toast.NewError("Copy failed", err.Error()))
	}
	return toast.Show(toast.Toast{Kind: toast.Info, Title: "Copied", Description: b.URL})
}

func (a App) cursor() int {
	if a.focusedPane == PaneCategories {
		return a.cursors.Category
	}
	return a.cursors.Bookmark
}

func (a App) paneLen() int {
	if a.focusedPane == PaneCategories {
		return len(a.Categories())
	}
	return len(a.VisibleBookmarks())
}

// setCursor moves the focused pane's cursor to i, clamped to the list.
// Changing category resets the bookmark cursor and the filter.
func (a *App) setCursor(i int) {
	i = min(i, a.paneLen()-1)
	i = max(i, 0)

	if a.focusedPane == PaneBookmarks {
		a.cursors.Bookmark = i
		return
	}

	if i != a.cursors.Category {
		a.cursors.Category = i
		a.cursors.Bookmark = 0
		a.filter.Reset()
	}
}
