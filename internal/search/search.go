// Package search matches bookmarks against a fuzzy query.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/marks/internal/model"
)

// Result is a fuzzy match against one bookmark.
type Result struct {
	Bookmark model.Bookmark
	// Index is the bookmark's position in the searched slice.
	Index          int
	MatchedIndexes []int
	Score          int
}

// haystack implements fuzzy.Source over bookmarks.
type haystack []model.Bookmark

func (h haystack) String(i int) string {
	return Haystack(h[i])
}

func (h haystack) Len() int {
	return len(h)
}

// Haystack is the text a bookmark is matched against: name, category and URL.
func Haystack(b model.Bookmark) string {
	return b.Name + " " + b.Category + " " + b.URL
}

// FuzzySearch matches query against every bookmark.
// Returns results sorted by match score (best first), nil for an empty query.
func FuzzySearch(bookmarks []model.Bookmark, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, haystack(bookmarks))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       bookmarks[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
