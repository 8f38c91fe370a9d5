// Package order implements drag reordering of the bookmark list: the
// committed array-move operation plus the gesture recognition that
// separates drags from clicks.
package order

import (
	"errors"
	"fmt"

	"github.com/calbers/startpage/internal/model"
)

// ErrNotFound is returned when a reorder references an ID that is not
// in the list. Both IDs come from rendered elements, so hitting this
// indicates a caller bug rather than a user error.
var ErrNotFound = errors.New("bookmark not found")

// Move returns a new list with the bookmark identified by sourceID
// moved to the position of targetID. The displaced run shifts by one
// toward the vacated slot; no element is duplicated or dropped.
// Moving an element onto itself returns the list unchanged.
func Move(bookmarks []model.Bookmark, sourceID, targetID string) ([]model.Bookmark, error) {
	if sourceID == targetID {
		return bookmarks, nil
	}

	sourceIndex := indexOf(bookmarks, sourceID)
	if sourceIndex < 0 {
		return nil, fmt.Errorf("source %q: %w", sourceID, ErrNotFound)
	}
	targetIndex := indexOf(bookmarks, targetID)
	if targetIndex < 0 {
		return nil, fmt.Errorf("target %q: %w", targetID, ErrNotFound)
	}

	result := make([]model.Bookmark, 0, len(bookmarks))
	result = append(result, bookmarks[:sourceIndex]...)
	result = append(result, bookmarks[sourceIndex+1:]...)

	moved := bookmarks[sourceIndex]
	result = append(result, model.Bookmark{})
	copy(result[targetIndex+1:], result[targetIndex:])
	result[targetIndex] = moved

	return result, nil
}

func indexOf(bookmarks []model.Bookmark, id string) int {
	for i := range bookmarks {
		if bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}
