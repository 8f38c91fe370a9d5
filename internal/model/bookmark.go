package model

import "encoding/json"

// Bookmark represents one shortcut tile on the start page.
type Bookmark struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Favicon string   `json:"favicon"`
	Labels  []string `json:"labels"`

	// extra holds persisted fields this schema version does not know
	// about. They round-trip through load/save untouched so a newer
	// schema survives an older binary.
	extra map[string]json.RawMessage
}

// knownBookmarkKeys are the JSON keys owned by this schema version.
var knownBookmarkKeys = map[string]bool{
	"id":      true,
	"name":    true,
	"url":     true,
	"favicon": true,
	"labels":  true,
}

// HasLabel reports whether the bookmark carries the given label.
// Labels behave as a set; duplicates on one record are harmless.
func (b *Bookmark) HasLabel(label string) bool {
	for _, l := range b.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// UnmarshalJSON decodes a bookmark, stashing unknown fields for passthrough.
// A record written without "labels" decodes with Labels == nil; the storage
// layer migrates that to an empty slice.
func (b *Bookmark) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type fields Bookmark // break recursion into this method
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*b = Bookmark(f)

	for key, val := range raw {
		if knownBookmarkKeys[key] {
			continue
		}
		if b.extra == nil {
			b.extra = map[string]json.RawMessage{}
		}
		b.extra[key] = val
	}
	return nil
}

// CopyExtraFrom carries old's passthrough fields onto b. An edit
// rewrites only the fields this schema version owns; whatever a newer
// schema persisted rides along unchanged.
func (b *Bookmark) CopyExtraFrom(old Bookmark) {
	if len(old.extra) == 0 {
		return
	}
	b.extra = make(map[string]json.RawMessage, len(old.extra))
	for key, val := range old.extra {
		b.extra[key] = val
	}
}

// MarshalJSON encodes the bookmark including any passthrough fields.
func (b Bookmark) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b.extra)+5)
	for key, val := range b.extra {
		out[key] = val
	}

	put := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = data
		return nil
	}

	labels := b.Labels
	if labels == nil {
		labels = []string{}
	}

	if err := put("id", b.ID); err != nil {
		return nil, err
	}
	if err := put("name", b.Name); err != nil {
		return nil, err
	}
	if err := put("url", b.URL); err != nil {
		return nil, err
	}
	if err := put("favicon", b.Favicon); err != nil {
		return nil, err
	}
	if err := put("labels", labels); err != nil {
		return nil, err
	}

	return json.Marshal(out)
}
