package exporter_test

import (
	"strings"
	"testing"

	"github.com/calbers/startpage/internal/exporter"
	"github.com/calbers/startpage/internal/importer"
	"github.com/calbers/startpage/internal/model"
)

func TestExportHTML(t *testing.T) {
	state := &model.State{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Name: "GitHub", URL: "https://github.com", Favicon: "https://github.com/favicon.ico", Labels: []string{"dev", "daily"}},
			{ID: "b2", Name: "Example", URL: "https://example.com", Labels: []string{}},
		},
	}

	out := exporter.ExportHTML(state)

	if !strings.Contains(out, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("expected Netscape doctype")
	}
	if !strings.Contains(out, `<A HREF="https://github.com" TAGS="dev,daily" ICON_URI="https://github.com/favicon.ico">GitHub</A>`) {
		t.Errorf("unexpected bookmark line:\n%s", out)
	}
	if !strings.Contains(out, `<A HREF="https://example.com">Example</A>`) {
		t.Errorf("expected unlabeled bookmark without TAGS attribute:\n%s", out)
	}

	// Display order becomes document order.
	if strings.Index(out, "GitHub") > strings.Index(out, "Example") {
		t.Error("expected GitHub before Example")
	}
}

func TestExportHTML_EscapesEntities(t *testing.T) {
	state := &model.State{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Name: "Tom & Jerry <live>", URL: "https://example.com/?a=1&b=2", Labels: []string{}},
		},
	}

	out := exporter.ExportHTML(state)

	if !strings.Contains(out, "Tom &amp; Jerry &lt;live&gt;") {
		t.Errorf("expected escaped name:\n%s", out)
	}
	if !strings.Contains(out, "https://example.com/?a=1&amp;b=2") {
		t.Errorf("expected escaped url:\n%s", out)
	}
}

func TestExportHTML_Empty(t *testing.T) {
	out := exporter.ExportHTML(model.NewState())

	if !strings.Contains(out, "<DL><p>") || !strings.Contains(out, "</DL><p>") {
		t.Errorf("expected well-formed empty list:\n%s", out)
	}
}

func TestExportHTML_RoundTripsThroughImporter(t *testing.T) {
	state := &model.State{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Name: "GitHub", URL: "https://github.com", Favicon: "https://github.com/favicon.ico", Labels: []string{"dev"}},
			{ID: "b2", Name: "Example", URL: "https://example.com", Labels: []string{}},
		},
	}

	reimported, err := importer.ParseHTMLBookmarks(strings.NewReader(exporter.ExportHTML(state)))
	if err != nil {
		t.Fatalf("failed to reimport: %v", err)
	}

	if len(reimported) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(reimported))
	}
	if reimported[0].Name != "GitHub" || reimported[0].URL != "https://github.com" {
		t.Errorf("unexpected first bookmark: %+v", reimported[0])
	}
	if len(reimported[0].Labels) != 1 || reimported[0].Labels[0] != "dev" {
		t.Errorf("expected labels to survive round trip, got %v", reimported[0].Labels)
	}
}
