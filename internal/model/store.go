package model

// Store is the persisted shape of the bookmark collection.
type Store struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// NewStore creates an empty Store with an initialized slice.
func NewStore() *Store {
	return &Store{
		Bookmarks: []Bookmark{},
	}
}

// Categories returns the distinct categories in order of first appearance.
func (s *Store) Categories() []string {
	return Categories(s.Bookmarks)
}

// InCategory returns the bookmarks filed under category, in collection order.
func (s *Store) InCategory(category string) []Bookmark {
	return InCategory(s.Bookmarks, category)
}

// HasURL reports whether any bookmark already points at url.
func (s *Store) HasURL(url string) bool {
	for _, b := range s.Bookmarks {
		if b.URL == url {
			return true
		}
	}
	return false
}

// ImportMerge appends imported bookmarks, skipping URLs already present
// (including duplicates within the import itself).
// Returns the number of bookmarks added and skipped.
func (s *Store) ImportMerge(bookmarks []Bookmark) (added, skipped int) {
	for _, b := range bookmarks {
		if s.HasURL(b.URL) {
			skipped++
			continue
		}
		s.Bookmarks = append(s.Bookmarks, b)
		added++
	}
	return added, skipped
}

// Categories returns the distinct categories of bookmarks in order of
// first appearance.
func Categories(bookmarks []Bookmark) []string {
	seen := make(map[string]bool)
	var result []string
	for _, b := range bookmarks {
		if seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		result = append(result, b.Category)
	}
	return result
}

// InCategory returns the bookmarks filed under category, in order.
func InCategory(bookmarks []Bookmark, category string) []Bookmark {
	var result []Bookmark
	for _, b := range bookmarks {
		if b.Category == category {
			result = append(result, b)
		}
	}
	return result
}
