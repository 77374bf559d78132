package tui

import (
	"strconv"

	"github.com/nikbrunner/marks/internal/model"
)

// ItemKind distinguishes between categories and bookmarks in a pane.
type ItemKind int

const (
	ItemCategory ItemKind = iota
	ItemBookmark
)

// Item is one row of the categories or bookmarks pane.
type Item struct {
	Kind     ItemKind
	Category string
	Count    int // bookmarks in Category
	Bookmark *model.Bookmark
}

// Title returns the display text for the item.
func (i Item) Title() string {
	if i.Kind == ItemCategory {
		return i.Category
	}
	return i.Bookmark.Name
}

// Suffix is shown right-aligned after the title and never truncated.
func (i Item) Suffix() string {
	if i.Kind == ItemCategory {
		return " (" + strconv.Itoa(i.Count) + ")"
	}
	return ""
}

// IsCategory returns true if this item is a category.
func (i Item) IsCategory() bool {
	return i.Kind == ItemCategory
}
