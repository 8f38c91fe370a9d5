// Package labels derives the label set from the bookmark list and
// implements single-label filtering.
package labels

import "github.com/calbers/startpage/internal/model"

// ShowAll is the filter sentinel meaning "no label selected".
const ShowAll = ""

// Unique returns the distinct labels across all bookmarks in
// first-seen order, so the filter bar renders stably.
func Unique(bookmarks []model.Bookmark) []string {
	seen := map[string]bool{}
	var result []string
	for i := range bookmarks {
		for _, label := range bookmarks[i].Labels {
			if seen[label] {
				continue
			}
			seen[label] = true
			result = append(result, label)
		}
	}
	return result
}

// Filter returns the subsequence of bookmarks carrying the selected
// label, preserving original relative order. The ShowAll sentinel
// returns the list unchanged.
func Filter(bookmarks []model.Bookmark, selected string) []model.Bookmark {
	if selected == ShowAll {
		return bookmarks
	}
	var result []model.Bookmark
	for i := range bookmarks {
		if bookmarks[i].HasLabel(selected) {
			result = append(result, bookmarks[i])
		}
	}
	return result
}
