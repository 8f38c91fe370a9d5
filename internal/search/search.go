package search

import (
	"github.com/calbers/startpage/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkNames implements fuzzy.Source for a bookmark slice.
type bookmarkNames []*model.Bookmark

func (bn bookmarkNames) String(i int) string {
	return bn[i].Name
}

func (bn bookmarkNames) Len() int {
	return len(bn)
}

// FuzzyMatch searches bookmarks by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzyMatch(bookmarks []model.Bookmark, query string) []Result {
	if query == "" {
		return nil
	}

	names := make(bookmarkNames, len(bookmarks))
	for i := range bookmarks {
		names[i] = &bookmarks[i]
	}

	matches := fuzzy.FindFrom(query, names)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       names[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
