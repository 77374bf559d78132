package search_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/search"
)

func TestFuzzySearch_EmptyQuery(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Dev"},
	}

	assert.Check(t, is.Nil(search.FuzzySearch(bookmarks, "")))
}

func TestFuzzySearch_ExactMatch(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Dev"},
		{Name: "GitLab", URL: "https://gitlab.com", Category: "Dev"},
	}

	results := search.FuzzySearch(bookmarks, "GitHub")

	assert.Equal(t, len(results), 1)
	assert.Equal(t, results[0].Bookmark.Name, "GitHub")
	assert.Equal(t, results[0].Index, 0)
}

func TestFuzzySearch_FuzzyMatch(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "React Router", URL: "https://reactrouter.com", Category: "Dev"},
		{Name: "TanStack Router", URL: "https://tanstack.com/router", Category: "Dev"},
	}

	// "tanrou" should fuzzy match "TanStack Router"
	results := search.FuzzySearch(bookmarks, "tanrou")

	assert.Assert(t, len(results) >= 1)
	assert.Equal(t, results[0].Bookmark.Name, "TanStack Router")
	assert.Equal(t, results[0].Index, 1)
}

func TestFuzzySearch_MultipleMatches(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Dev"},
		{Name: "GitLab", URL: "https://gitlab.com", Category: "Dev"},
		{Name: "Gitea", URL: "https://gitea.io", Category: "Dev"},
	}

	assert.Check(t, is.Len(search.FuzzySearch(bookmarks, "git"), 3))
}

func TestFuzzySearch_NoMatch(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Dev"},
	}

	assert.Check(t, is.Len(search.FuzzySearch(bookmarks, "xyz123"), 0))
}

func TestFuzzySearch_CaseInsensitive(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Dev"},
	}

	assert.Check(t, is.Len(search.FuzzySearch(bookmarks, "github"), 1))
}

func TestFuzzySearch_MatchesCategory(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "Go", URL: "https://go.dev", Category: "Languages"},
		{Name: "Charm", URL: "https://charm.sh", Category: "Tools"},
	}

	results := search.FuzzySearch(bookmarks, "languages")

	assert.Equal(t, len(results), 1)
	assert.Equal(t, results[0].Bookmark.Name, "Go")
}

func TestFuzzySearch_SortedByScore(t *testing.T) {
	bookmarks := []model.Bookmark{
		{Name: "React Router Documentation", URL: "https://reactrouter.com", Category: "Dev"},
		{Name: "Router", URL: "https://router.example.com", Category: "Dev"},
	}

	results := search.FuzzySearch(bookmarks, "router")

	assert.Assert(t, len(results) >= 2)
	// A match at the start of the text ranks first
	assert.Equal(t, results[0].Bookmark.Name, "Router")
}

func TestHaystack(t *testing.T) {
	b := model.Bookmark{Name: "Go", URL: "https://go.dev", Category: "Lang"}
	assert.Equal(t, search.Haystack(b), "Go Lang https://go.dev")
}
