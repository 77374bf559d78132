// Package exporter writes bookmarks as Netscape bookmark HTML, one folder
// per category.
package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/marks/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/bookmarks-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bookmarks-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the store. Categories appear in first-appearance
// order, bookmarks in collection order within each category.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, category := range store.Categories() {
		writeCategory(&b, category, store.InCategory(category))
	}

	b.WriteString("</DL><p>\n")

	return b.String()
}

// WriteFile exports the store to path, creating parent directories.
func WriteFile(path string, store *model.Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ExportHTML(store)), 0644)
}

func writeCategory(b *strings.Builder, category string, bookmarks []model.Bookmark) {
	const prefix = "    "

	fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(category))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)
	for _, bookmark := range bookmarks {
		fmt.Fprintf(b,
			"%s%s<DT><A HREF=\"%s\">%s</A>\n",
			prefix, prefix,
			html.EscapeString(bookmark.URL),
			html.EscapeString(bookmark.Name),
		)
	}
	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}
