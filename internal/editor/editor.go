// Package editor validates and materializes a create/edit draft into a
// canonical bookmark record.
package editor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/calbers/startpage/internal/model"
)

// Mode is the editor state: no draft open, creating a new bookmark, or
// editing an existing one.
type Mode int

const (
	Idle Mode = iota
	Creating
	Editing
)

// Draft is the transient working copy of a bookmark being created or
// edited. Labels arrive as a single comma-separated string from the
// form.
type Draft struct {
	ID      string // empty while creating
	Name    string
	URL     string
	Favicon string
	Labels  string
}

// NewDraft returns an empty draft for the create flow.
func NewDraft() Draft {
	return Draft{}
}

// DraftFrom initializes a draft from an existing record, including its
// ID, for the edit flow.
func DraftFrom(b model.Bookmark) Draft {
	return Draft{
		ID:      b.ID,
		Name:    b.Name,
		URL:     b.URL,
		Favicon: b.Favicon,
		Labels:  strings.Join(b.Labels, ", "),
	}
}

// ValidationError describes a rejected draft. The draft stays open for
// correction; nothing is committed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Submit validates the draft and materializes it into a bookmark.
// A draft carrying an ID keeps it (edit); one without gets a fresh
// unique ID (create). A missing favicon defaults to the validated
// URL's origin plus /favicon.ico.
func Submit(draft Draft) (model.Bookmark, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.Bookmark{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	rawURL := strings.TrimSpace(draft.URL)
	if rawURL == "" {
		return model.Bookmark{}, &ValidationError{Field: "url", Reason: "must not be empty"}
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return model.Bookmark{}, &ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}

	favicon := strings.TrimSpace(draft.Favicon)
	if favicon == "" {
		// Derive from the parsed origin rather than string surgery so
		// paths, ports and credentials in the input can't leak in.
		favicon = parsed.Scheme + "://" + parsed.Host + "/favicon.ico"
	}

	id := draft.ID
	if id == "" {
		id = model.NewID()
	}

	return model.Bookmark{
		ID:      id,
		Name:    name,
		URL:     rawURL,
		Favicon: favicon,
		Labels:  ParseLabels(draft.Labels),
	}, nil
}

// ParseLabels splits the raw comma-separated label string: trim each
// piece, drop empties. Duplicates are kept; label membership treats the
// list as a set, and the label index dedups for display.
func ParseLabels(raw string) []string {
	result := []string{}
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		result = append(result, piece)
	}
	return result
}
