package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nikbrunner/marks/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestBookmark_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   model.Bookmark
		wantErr bool
		fields  []string
	}{
		{
			name:  "well formed",
			input: model.Bookmark{Name: "Example", URL: "https://example.com", Category: "Docs"},
		},
		{
			name:  "url with path and query",
			input: model.Bookmark{Name: "Go", URL: "https://go.dev/doc/?q=1#top", Category: "Go"},
		},
		{
			name:    "missing scheme",
			input:   model.Bookmark{Name: "Example", URL: "example.com", Category: "Docs"},
			wantErr: true,
			fields:  []string{"url"},
		},
		{
			name:    "http scheme",
			input:   model.Bookmark{Name: "Example", URL: "http://example.com", Category: "Docs"},
			wantErr: true,
			fields:  []string{"url"},
		},
		{
			name:    "uppercase scheme",
			input:   model.Bookmark{Name: "Example", URL: "HTTPS://example.com", Category: "Docs"},
			wantErr: true,
			fields:  []string{"url"},
		},
		{
			name:    "scheme only",
			input:   model.Bookmark{Name: "Example", URL: "https://", Category: "Docs"},
			wantErr: true,
			fields:  []string{"url"},
		},
		{
			name:    "port only",
			input:   model.Bookmark{Name: "Example", URL: "https://:80", Category: "Docs"},
			wantErr: true,
			fields:  []string{"url"},
		},
		{
			name:    "space in host",
			input:   model.Bookmark{Name: "Example", URL: "https://exa mple.com", Category: "Docs"},
			wantErr: true,
			fields:  []string{"url"},
		},
		{
			name:    "empty name",
			input:   model.Bookmark{Name: "", URL: "https://example.com", Category: "Docs"},
			wantErr: true,
			fields:  []string{"name"},
		},
		{
			name:    "blank category",
			input:   model.Bookmark{Name: "Example", URL: "https://example.com", Category: "   "},
			wantErr: true,
			fields:  []string{"category"},
		},
		{
			name:    "everything empty",
			input:   model.Bookmark{},
			wantErr: true,
			fields:  []string{"url", "name", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if !tt.wantErr {
				assert.NilError(t, err)
				assert.Check(t, is.Len(tt.input.InvalidFields(), 0))
				return
			}
			assert.Assert(t, errors.Is(err, model.ErrValidation), "got %v", err)
			assert.DeepEqual(t, tt.input.InvalidFields(), tt.fields)
		})
	}
}

func TestNewBookmark_KeepsInputVerbatim(t *testing.T) {
	b, err := model.NewBookmark(model.NewBookmarkParams{
		Name:     " Example ",
		URL:      "https://example.com",
		Category: "Docs",
	})
	assert.NilError(t, err)
	assert.Equal(t, b, model.Bookmark{Name: " Example ", URL: "https://example.com", Category: "Docs"})
}

func TestNewBookmark_Invalid(t *testing.T) {
	b, err := model.NewBookmark(model.NewBookmarkParams{URL: "example.com"})
	assert.Assert(t, errors.Is(err, model.ErrValidation))
	assert.Equal(t, b, model.Bookmark{})
	assert.ErrorContains(t, err, "url must start with https://")
	assert.ErrorContains(t, err, "name is required")
}

func TestBookmark_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(model.Bookmark{Name: "Go", URL: "https://go.dev", Category: "Lang"})
	assert.NilError(t, err)
	assert.Equal(t, string(data), `{"name":"Go","url":"https://go.dev","category":"Lang"}`)
}

func TestStore_Categories(t *testing.T) {
	store := model.Store{
		Bookmarks: []model.Bookmark{
			{Name: "Go", URL: "https://go.dev", Category: "Lang"},
			{Name: "Charm", URL: "https://charm.sh", Category: "Tools"},
			{Name: "Rust", URL: "https://rust-lang.org", Category: "Lang"},
		},
	}

	assert.DeepEqual(t, store.Categories(), []string{"Lang", "Tools"})

	lang := store.InCategory("Lang")
	assert.Equal(t, len(lang), 2)
	assert.Equal(t, lang[0].Name, "Go")
	assert.Equal(t, lang[1].Name, "Rust")

	assert.Check(t, is.Len(store.InCategory("Missing"), 0))
}

func TestStore_ImportMerge_SkipsDuplicateURLs(t *testing.T) {
	store := model.Store{
		Bookmarks: []model.Bookmark{
			{Name: "Existing", URL: "https://example.com", Category: "Docs"},
		},
	}

	added, skipped := store.ImportMerge([]model.Bookmark{
		{Name: "Duplicate", URL: "https://example.com", Category: "Docs"},
		{Name: "New Site", URL: "https://newsite.com", Category: "Docs"},
		{Name: "New Site Again", URL: "https://newsite.com", Category: "Other"},
	})

	assert.Equal(t, added, 1)
	assert.Equal(t, skipped, 2)
	assert.Equal(t, len(store.Bookmarks), 2)
	assert.Equal(t, store.Bookmarks[1].Name, "New Site")
}

func TestStore_HasURL(t *testing.T) {
	store := model.NewStore()
	assert.Assert(t, !store.HasURL("https://example.com"))

	store.Bookmarks = append(store.Bookmarks, model.Bookmark{Name: "E", URL: "https://example.com", Category: "D"})
	assert.Assert(t, store.HasURL("https://example.com"))
}
