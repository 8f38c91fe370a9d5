package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/calbers/startpage/internal/model"
)

func TestBookmark_HasLabel(t *testing.T) {
	b := model.Bookmark{
		ID:     "b1",
		Name:   "GitHub",
		URL:    "https://github.com",
		Labels: []string{"dev", "daily"},
	}

	if !b.HasLabel("dev") {
		t.Error("expected HasLabel(dev) to be true")
	}
	if b.HasLabel("news") {
		t.Error("expected HasLabel(news) to be false")
	}
	if b.HasLabel("") {
		t.Error("expected HasLabel of empty string to be false")
	}
}

func TestBookmark_JSONRoundTrip(t *testing.T) {
	b := model.Bookmark{
		ID:      "b1",
		Name:    "GitHub",
		URL:     "https://github.com",
		Favicon: "https://github.com/favicon.ico",
		Labels:  []string{"dev"},
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var loaded model.Bookmark
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if loaded.ID != b.ID || loaded.Name != b.Name || loaded.URL != b.URL || loaded.Favicon != b.Favicon {
		t.Errorf("round trip mismatch: got %+v", loaded)
	}
	if len(loaded.Labels) != 1 || loaded.Labels[0] != "dev" {
		t.Errorf("expected labels [dev], got %v", loaded.Labels)
	}
}

func TestBookmark_NilLabelsMarshalAsEmptyArray(t *testing.T) {
	b := model.Bookmark{ID: "b1", Name: "GitHub", URL: "https://github.com"}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	if !strings.Contains(string(data), `"labels":[]`) {
		t.Errorf("expected labels to marshal as empty array, got %s", data)
	}
}

func TestBookmark_UnknownFieldsSurviveRoundTrip(t *testing.T) {
	raw := `{"id":"b1","name":"GitHub","url":"https://github.com","favicon":"","labels":[],"pinned":true,"note":"check later"}`

	var b model.Bookmark
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal re-marshaled bookmark: %v", err)
	}

	if string(fields["pinned"]) != "true" {
		t.Errorf("expected pinned field to survive, got %s", fields["pinned"])
	}
	if string(fields["note"]) != `"check later"` {
		t.Errorf("expected note field to survive, got %s", fields["note"])
	}
	if string(fields["name"]) != `"GitHub"` {
		t.Errorf("expected name field intact, got %s", fields["name"])
	}
}

func TestBookmark_KnownFieldsWinOverStaleExtra(t *testing.T) {
	raw := `{"id":"b1","name":"Old","url":"https://example.com","labels":[]}`

	var b model.Bookmark
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	b.Name = "New"

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if string(fields["name"]) != `"New"` {
		t.Errorf("expected updated name to win, got %s", fields["name"])
	}
}

func TestBookmark_CopyExtraFrom(t *testing.T) {
	raw := `{"id":"b1","name":"Old","url":"https://example.com","labels":[],"visits":42}`

	var old model.Bookmark
	if err := json.Unmarshal([]byte(raw), &old); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	replacement := model.Bookmark{ID: "b1", Name: "New", URL: "https://example.com", Labels: []string{}}
	replacement.CopyExtraFrom(old)

	data, err := json.Marshal(replacement)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if string(fields["visits"]) != "42" {
		t.Errorf("expected visits carried over, got %s", fields["visits"])
	}
	if string(fields["name"]) != `"New"` {
		t.Errorf("expected known fields untouched, got %s", fields["name"])
	}
}

func TestState_IndexOf(t *testing.T) {
	state := &model.State{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Name: "One", URL: "https://one.test"},
			{ID: "b2", Name: "Two", URL: "https://two.test"},
		},
	}

	if idx := state.IndexOf("b2"); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
	if idx := state.IndexOf("missing"); idx != -1 {
		t.Errorf("expected -1 for missing id, got %d", idx)
	}
}

func TestState_GetBookmarkByID(t *testing.T) {
	state := &model.State{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Name: "One", URL: "https://one.test"},
		},
	}

	b := state.GetBookmarkByID("b1")
	if b == nil {
		t.Fatal("expected bookmark, got nil")
	}
	if b.Name != "One" {
		t.Errorf("expected One, got %s", b.Name)
	}

	if state.GetBookmarkByID("missing") != nil {
		t.Error("expected nil for missing id")
	}
}

func TestState_ImportMerge(t *testing.T) {
	state := &model.State{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Name: "One", URL: "https://one.test"},
		},
	}

	added, skipped := state.ImportMerge([]model.Bookmark{
		{ID: "b2", Name: "Two", URL: "https://two.test"},
		{ID: "b3", Name: "One Again", URL: "https://one.test"},
	})

	if added != 1 {
		t.Errorf("expected 1 added, got %d", added)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", skipped)
	}
	if len(state.Bookmarks) != 2 {
		t.Errorf("expected 2 bookmarks, got %d", len(state.Bookmarks))
	}
	if state.Bookmarks[1].Name != "Two" {
		t.Errorf("expected Two appended, got %s", state.Bookmarks[1].Name)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := model.NewID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
