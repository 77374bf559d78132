package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/marks/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	if a.form.IsOpen() {
		return a.renderModal()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	paneWidth := layout.CalculatePaneWidth(a.width, a.layoutConfig.Pane)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderCategoriesPane(paneWidth, paneHeight),
		a.renderBookmarksPane(paneWidth, paneHeight),
		a.renderPreviewPane(paneWidth, paneHeight),
	)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderTrigger(), columns, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

func (a App) renderTrigger() string {
	return a.styles.Trigger.Render("[ " + a.form.TriggerLabel() + " ]")
}

// renderModal centers the entry form above the help bar.
func (a App) renderModal() string {
	modal := lipgloss.Place(
		a.width,
		a.height-3,
		lipgloss.Center,
		lipgloss.Center,
		a.form.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, modal, a.renderHelpBar())
}

func (a App) renderCategoriesPane(width, height int) string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("Categories") + "\n\n")

	visibleHeight := layout.CalculateVisibleHeight(height, a.layoutConfig.Pane.HeaderLines)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	items := a.categoryItems()
	if len(items) == 0 {
		content.WriteString(a.styles.Empty.Render("(no bookmarks)"))
	} else {
		offset := layout.CalculateViewportOffset(a.cursors.Category, len(items), visibleHeight)
		for i := offset; i < len(items) && i < offset+visibleHeight; i++ {
			content.WriteString(a.renderItem(items[i], i == a.cursors.Category, itemWidth) + "\n")
		}
	}

	return a.paneStyle(PaneCategories).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderBookmarksPane(width, height int) string {
	var content strings.Builder

	// Filter input or indicator replaces the title
	switch {
	case a.mode == ModeFilter:
		content.WriteString("/" + a.filter.Input.View() + "\n\n")
	case a.filter.Query != "":
		content.WriteString(a.styles.Category.Render("/"+a.filter.Query) + "\n\n")
	default:
		content.WriteString(a.styles.Title.Render("Bookmarks") + "\n\n")
	}

	visibleHeight := layout.CalculateVisibleHeight(height, a.layoutConfig.Pane.HeaderLines)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	bookmarks := a.VisibleBookmarks()
	if len(bookmarks) == 0 {
		if a.filter.Query != "" {
			content.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			content.WriteString(a.styles.Empty.Render("(empty)"))
		}
	} else {
		offset := layout.CalculateViewportOffset(a.cursors.Bookmark, len(bookmarks), visibleHeight)
		for i := offset; i < len(bookmarks) && i < offset+visibleHeight; i++ {
			// Only show selection when the pane is focused
			isSelected := a.focusedPane == PaneBookmarks && i == a.cursors.Bookmark
			item := Item{Kind: ItemBookmark, Bookmark: &bookmarks[i]}
			content.WriteString(a.renderItem(item, isSelected, itemWidth) + "\n")
		}
	}

	return a.paneStyle(PaneBookmarks).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderPreviewPane(width, height int) string {
	var content strings.Builder

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	if b, ok := a.SelectedBookmark(); ok {
		name, _ := layout.TruncateText(b.Name, itemWidth, a.layoutConfig.Text)
		content.WriteString(a.styles.Title.Render(name) + "\n\n")

		url, _ := layout.TruncateText(b.URL, itemWidth, a.layoutConfig.Text)
		content.WriteString(a.styles.URL.Render(url) + "\n\n")

		category, _ := layout.TruncateText("Category: "+b.Category, itemWidth, a.layoutConfig.Text)
		content.WriteString(a.styles.Category.Render(category))
	} else {
		content.WriteString(a.styles.Empty.Render("(nothing selected)"))
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(content.String())
}

func (a App) renderItem(item Item, isCursor bool, maxWidth int) string {
	line, _ := layout.TruncateKeepSuffix(item.Title(), item.Suffix(), maxWidth, a.layoutConfig.Text)

	if isCursor {
		// Pad to fill width for highlight
		if pad := maxWidth - layout.VisibleLength(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return a.styles.ItemSelected.Render(line)
	}
	return a.styles.Item.Render(line)
}

func (a App) categoryItems() []Item {
	bookmarks := a.shared.Bookmarks.Get()
	counts := make(map[string]int)
	for _, b := range bookmarks {
		counts[b.Category]++
	}

	categories := a.Categories()
	items := make([]Item, len(categories))
	for i, c := range categories {
		items[i] = Item{Kind: ItemCategory, Category: c, Count: counts[c]}
	}
	return items
}

func (a App) paneStyle(p Pane) lipgloss.Style {
	if a.focusedPane == p && !a.form.IsOpen() {
		return a.styles.PaneActive
	}
	return a.styles.Pane
}

// renderHelpBar renders the toast line above the keyboard hints.
func (a App) renderHelpBar() string {
	// Empty line provides the gap when no toast is showing
	lines := []string{a.toast.View()}

	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}
