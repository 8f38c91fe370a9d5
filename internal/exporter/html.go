package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/calbers/startpage/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/startpage-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("startpage-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the bookmark list to Netscape bookmark HTML in
// display order. Labels are written as the TAGS attribute.
func ExportHTML(state *model.State) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for i := range state.Bookmarks {
		writeBookmark(&b, &state.Bookmarks[i])
	}

	b.WriteString("</DL><p>\n")

	return b.String()
}

func writeBookmark(b *strings.Builder, bookmark *model.Bookmark) {
	b.WriteString("    <DT><A HREF=\"")
	b.WriteString(html.EscapeString(bookmark.URL))
	b.WriteString("\"")
	if len(bookmark.Labels) > 0 {
		fmt.Fprintf(b, " TAGS=\"%s\"", html.EscapeString(strings.Join(bookmark.Labels, ",")))
	}
	if bookmark.Favicon != "" {
		fmt.Fprintf(b, " ICON_URI=\"%s\"", html.EscapeString(bookmark.Favicon))
	}
	fmt.Fprintf(b, ">%s</A>\n", html.EscapeString(bookmark.Name))
}
