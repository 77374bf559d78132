// Package state holds the shared, host-owned state that components receive
// as read/write handles instead of reaching for globals.
//
// Cells are not synchronised. They are written from a single bubbletea
// Update call at a time.
package state

import (
	"slices"

	"github.com/nikbrunner/marks/internal/model"
)

// Cell is a mutable reference to a value of type T.
type Cell[T any] struct {
	value T
}

// NewCell creates a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the current value.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Update replaces the current value with fn(current).
func (c *Cell[T]) Update(fn func(T) T) {
	c.value = fn(c.value)
}

// Shared is the state the application owns and lends to its components.
type Shared struct {
	DialogOpen *Cell[bool]
	Bookmarks  *Cell[[]model.Bookmark]
}

// NewShared creates closed-dialog state seeded with bookmarks.
// A nil slice is treated as an empty collection.
func NewShared(bookmarks []model.Bookmark) Shared {
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return Shared{
		DialogOpen: NewCell(false),
		Bookmarks:  NewCell(bookmarks),
	}
}

// Append adds b to the end of the collection held by cell.
// The previous slice is never written to, so snapshots taken with Get
// before the call keep their contents.
func Append(cell *Cell[[]model.Bookmark], b model.Bookmark) {
	cell.Update(func(prev []model.Bookmark) []model.Bookmark {
		next := slices.Clip(slices.Clone(prev))
		return append(next, b)
	})
}
