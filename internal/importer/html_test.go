package importer_test

import (
	"strings"
	"testing"

	"github.com/calbers/startpage/internal/importer"
)

func TestParseHTMLBookmarks_Flat(t *testing.T) {
	input := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://github.com">GitHub</A>
    <DT><A HREF="https://news.ycombinator.com">Hacker News</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(bookmarks) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(bookmarks))
	}
	if bookmarks[0].Name != "GitHub" || bookmarks[0].URL != "https://github.com" {
		t.Errorf("unexpected first bookmark: %+v", bookmarks[0])
	}
	if bookmarks[1].Name != "Hacker News" {
		t.Errorf("expected document order preserved, got %s", bookmarks[1].Name)
	}
	if bookmarks[0].ID == "" {
		t.Error("expected imported bookmark to get an id")
	}
}

func TestParseHTMLBookmarks_FoldersBecomeLabels(t *testing.T) {
	input := `<DL><p>
    <DT><H3>Development</H3>
    <DL><p>
        <DT><H3>Go</H3>
        <DL><p>
            <DT><A HREF="https://pkg.go.dev">pkg.go.dev</A>
        </DL><p>
        <DT><A HREF="https://github.com">GitHub</A>
    </DL><p>
    <DT><A HREF="https://example.com">Example</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(bookmarks) != 3 {
		t.Fatalf("expected 3 bookmarks, got %d", len(bookmarks))
	}

	byName := make(map[string][]string)
	for _, b := range bookmarks {
		byName[b.Name] = b.Labels
	}

	if got := byName["pkg.go.dev"]; len(got) != 2 || got[0] != "Development" || got[1] != "Go" {
		t.Errorf("expected nested folders as labels, got %v", got)
	}
	if got := byName["GitHub"]; len(got) != 1 || got[0] != "Development" {
		t.Errorf("expected enclosing folder as label, got %v", got)
	}
	if got := byName["Example"]; len(got) != 0 {
		t.Errorf("expected no labels at top level, got %v", got)
	}
}

func TestParseHTMLBookmarks_TagsAttribute(t *testing.T) {
	input := `<DL><p>
    <DT><A HREF="https://github.com" TAGS="dev,daily">GitHub</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	labels := bookmarks[0].Labels
	if len(labels) != 2 || labels[0] != "dev" || labels[1] != "daily" {
		t.Errorf("expected tags attribute as labels, got %v", labels)
	}
}

func TestParseHTMLBookmarks_IconURI(t *testing.T) {
	input := `<DL><p>
    <DT><A HREF="https://github.com" ICON_URI="https://github.com/fluidicon.png">GitHub</A>
    <DT><A HREF="https://example.com">Example</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if bookmarks[0].Favicon != "https://github.com/fluidicon.png" {
		t.Errorf("expected icon_uri carried over, got %s", bookmarks[0].Favicon)
	}
	if bookmarks[1].Favicon != "https://example.com/favicon.ico" {
		t.Errorf("expected derived favicon, got %s", bookmarks[1].Favicon)
	}
}

func TestParseHTMLBookmarks_SkipsInvalidRecords(t *testing.T) {
	input := `<DL><p>
    <DT><A HREF="place:sort=8&maxResults=10">Most Visited</A>
    <DT><A HREF="https://github.com">GitHub</A>
    <DT><A>No href</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected only the valid bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Name != "GitHub" {
		t.Errorf("expected GitHub, got %s", bookmarks[0].Name)
	}
}

func TestParseHTMLBookmarks_NameFallsBackToURL(t *testing.T) {
	input := `<DL><p>
    <DT><A HREF="https://example.com"></A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Name != "https://example.com" {
		t.Errorf("expected url as name fallback, got %s", bookmarks[0].Name)
	}
}
