// Package importer reads bookmarks from Netscape bookmark HTML, the format
// browsers export.
package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/marks/internal/model"
)

// Result is the outcome of parsing one bookmark file.
type Result struct {
	// Bookmarks holds the valid entries in document order.
	Bookmarks []model.Bookmark
	// Rejected counts links that failed bookmark validation.
	Rejected int
}

// ParseHTMLBookmarks parses Netscape bookmark HTML. Each link takes the name
// of its nearest enclosing folder as category; links outside any folder get
// rootCategory.
func ParseHTMLBookmarks(r io.Reader, rootCategory string) (Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Result{}, err
	}

	var result Result

	var folderStack []string // folder names, innermost last
	pendingFolder := ""      // folder waiting to be pushed on next DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				pendingFolder = getTextContent(n)
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				name := getTextContent(n)
				if name == "" {
					name = href
				}

				category := rootCategory
				if len(folderStack) > 0 {
					category = folderStack[len(folderStack)-1]
				}

				b, err := model.NewBookmark(model.NewBookmarkParams{
					Name:     name,
					URL:      href,
					Category: category,
				})
				if err != nil {
					result.Rejected++
					return
				}
				result.Bookmarks = append(result.Bookmarks, b)
				return // Don't recurse into A

			case "dl":
				// A DL right after an H3 holds that folder's contents
				pushed := false
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return result, nil
}

// getTextContent returns the trimmed text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
