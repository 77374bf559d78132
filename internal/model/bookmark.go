package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// RequiredScheme is the prefix every bookmark URL must start with.
const RequiredScheme = "https://"

// Bookmark is a validated (name, url, category) triple.
// It has no identity of its own: bookmarks are ordered by position.
type Bookmark struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// NewBookmarkParams holds the raw input for creating a Bookmark.
type NewBookmarkParams struct {
	Name     string
	URL      string
	Category string
}

// NewBookmark builds a Bookmark from raw input and validates it.
// The returned bookmark carries the input exactly as given.
func NewBookmark(params NewBookmarkParams) (Bookmark, error) {
	b := Bookmark{
		Name:     params.Name,
		URL:      params.URL,
		Category: params.Category,
	}
	if err := b.Validate(); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

// Validate checks the bookmark invariants. All violations are reported
// together, wrapped in ErrValidation.
func (b Bookmark) Validate() error {
	var errs []error

	if isBlank(b.Name) {
		errs = append(errs, errors.New("name is required"))
	}
	if err := validateURL(b.URL); err != nil {
		errs = append(errs, err)
	}
	if isBlank(b.Category) {
		errs = append(errs, errors.New("category is required"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
}

// InvalidFields returns the names of the fields that fail validation,
// in form order (url, name, category). Empty when the bookmark is valid.
func (b Bookmark) InvalidFields() []string {
	var fields []string
	if validateURL(b.URL) != nil {
		fields = append(fields, "url")
	}
	if isBlank(b.Name) {
		fields = append(fields, "name")
	}
	if isBlank(b.Category) {
		fields = append(fields, "category")
	}
	return fields
}

func validateURL(raw string) error {
	if isBlank(raw) {
		return errors.New("url is required")
	}
	if !strings.HasPrefix(raw, RequiredScheme) {
		return fmt.Errorf("url must start with %s", RequiredScheme)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url is malformed: %w", err)
	}
	if u.Hostname() == "" {
		return errors.New("url has no host")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
