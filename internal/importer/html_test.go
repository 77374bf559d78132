package importer_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/marks/internal/importer"
	"github.com/nikbrunner/marks/internal/model"
)

func TestParseHTML_SingleBookmark(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://github.com" ADD_DATE="1700000000">GitHub</A>
</DL><p>`

	result, err := importer.ParseHTMLBookmarks(strings.NewReader(html), "Imported")
	assert.NilError(t, err)

	assert.DeepEqual(t, result.Bookmarks, []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Imported"},
	})
	assert.Equal(t, result.Rejected, 0)
}

func TestParseHTML_NearestFolderIsCategory(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3>Development</H3>
    <DL><p>
        <DT><A HREF="https://github.com">GitHub</A>
        <DT><H3>Frontend</H3>
        <DL><p>
            <DT><A HREF="https://react.dev">React</A>
        </DL><p>
        <DT><A HREF="https://go.dev">Go</A>
    </DL><p>
    <DT><A HREF="https://google.com">Google</A>
</DL><p>`

	result, err := importer.ParseHTMLBookmarks(strings.NewReader(html), "Imported")
	assert.NilError(t, err)

	assert.DeepEqual(t, result.Bookmarks, []model.Bookmark{
		{Name: "GitHub", URL: "https://github.com", Category: "Development"},
		{Name: "React", URL: "https://react.dev", Category: "Frontend"},
		{Name: "Go", URL: "https://go.dev", Category: "Development"},
		{Name: "Google", URL: "https://google.com", Category: "Imported"},
	})
}

func TestParseHTML_EmptyFile(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
</DL><p>`

	result, err := importer.ParseHTMLBookmarks(strings.NewReader(html), "Imported")
	assert.NilError(t, err)
	assert.Check(t, is.Len(result.Bookmarks, 0))
	assert.Equal(t, result.Rejected, 0)
}

func TestParseHTML_RejectsInvalidLinks(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><A ADD_DATE="1234567890">No URL</A>
    <DT><A HREF="http://insecure.example">Insecure</A>
    <DT><A HREF="javascript:void(0)">Bookmarklet</A>
    <DT><A HREF="https://valid.com">Valid</A>
</DL><p>`

	result, err := importer.ParseHTMLBookmarks(strings.NewReader(html), "Imported")
	assert.NilError(t, err)

	assert.Equal(t, len(result.Bookmarks), 1)
	assert.Equal(t, result.Bookmarks[0].Name, "Valid")
	assert.Equal(t, result.Rejected, 3)
}

func TestParseHTML_NameFallsBackToURL(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://untitled.example"></A>
</DL><p>`

	result, err := importer.ParseHTMLBookmarks(strings.NewReader(html), "Imported")
	assert.NilError(t, err)

	assert.Equal(t, len(result.Bookmarks), 1)
	assert.Equal(t, result.Bookmarks[0].Name, "https://untitled.example")
}
