package model

// State holds everything the start page persists: the ordered bookmark
// list and the last-selected label filter.
type State struct {
	Bookmarks []Bookmark `json:"bookmarks"`

	// ViewMode is the persisted label filter. Empty string means
	// "show all"; it serializes as null to match the original layout.
	ViewMode string `json:"-"`
}

// NewState creates an empty State with an initialized bookmark slice.
func NewState() *State {
	return &State{Bookmarks: []Bookmark{}}
}

// IndexOf returns the position of the bookmark with the given ID,
// or -1 if the ID is not present.
func (s *State) IndexOf(id string) int {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *State) GetBookmarkByID(id string) *Bookmark {
	if i := s.IndexOf(id); i >= 0 {
		return &s.Bookmarks[i]
	}
	return nil
}

// HasBookmarkURL reports whether any bookmark already carries the URL.
// Used by import to skip duplicates.
func (s *State) HasBookmarkURL(url string) bool {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].URL == url {
			return true
		}
	}
	return false
}

// ImportMerge appends bookmarks that are not already present (by URL).
// Returns the number of bookmarks added and skipped.
func (s *State) ImportMerge(bookmarks []Bookmark) (added, skipped int) {
	for _, b := range bookmarks {
		if s.HasBookmarkURL(b.URL) {
			skipped++
			continue
		}
		s.Bookmarks = append(s.Bookmarks, b)
		added++
	}
	return added, skipped
}
