// Package manager orchestrates the bookmark subsystem: it owns the
// session's single in-memory copy of the list, the label filter, and
// the editor state, and persists after every committed mutation.
package manager

import (
	"errors"
	"fmt"

	"github.com/calbers/startpage/internal/editor"
	"github.com/calbers/startpage/internal/labels"
	"github.com/calbers/startpage/internal/logger"
	"github.com/calbers/startpage/internal/model"
	"github.com/calbers/startpage/internal/order"
	"github.com/calbers/startpage/internal/storage"
)

// ErrNoDraft is returned when a commit arrives with no editor session
// open.
var ErrNoDraft = errors.New("no draft open")

// Manager is the composition root of the bookmark subsystem.
type Manager struct {
	state *model.State
	store storage.Storage
	log   logger.Logger

	mode  editor.Mode
	draft editor.Draft
}

// New loads the persisted state and returns a manager owning it.
// This is the session's single load boundary; every committed mutation
// afterwards writes the full state back.
func New(store storage.Storage, log logger.Logger) (*Manager, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	return &Manager{state: state, store: store, log: log, mode: editor.Idle}, nil
}

// Bookmarks returns the list as currently filtered for display.
func (m *Manager) Bookmarks() []model.Bookmark {
	return labels.Filter(m.state.Bookmarks, m.state.ViewMode)
}

// AllBookmarks returns the full ordered list regardless of filter.
func (m *Manager) AllBookmarks() []model.Bookmark {
	return m.state.Bookmarks
}

// Get finds a bookmark by ID, returns nil if not found.
func (m *Manager) Get(id string) *model.Bookmark {
	return m.state.GetBookmarkByID(id)
}

// Labels returns the deduplicated label set in first-seen order.
func (m *Manager) Labels() []string {
	return labels.Unique(m.state.Bookmarks)
}

// Filter returns the selected label, or labels.ShowAll.
func (m *Manager) Filter() string {
	return m.state.ViewMode
}

// SetFilter selects a label filter (labels.ShowAll clears it) and
// persists the choice. The filter is presentation metadata only; the
// stored bookmark list is unaffected. A label with no remaining
// bookmarks is kept as-is and simply yields an empty view.
func (m *Manager) SetFilter(label string) {
	if m.state.ViewMode == label {
		return
	}
	m.state.ViewMode = label
	m.persist()
}

// Mode returns the current editor state.
func (m *Manager) Mode() editor.Mode {
	return m.mode
}

// Draft returns the draft the editor was opened with.
func (m *Manager) Draft() editor.Draft {
	return m.draft
}

// OpenCreate opens the editor with an empty draft.
func (m *Manager) OpenCreate() {
	m.mode = editor.Creating
	m.draft = editor.NewDraft()
}

// OpenEdit opens the editor with a copy of the existing record.
func (m *Manager) OpenEdit(id string) error {
	b := m.state.GetBookmarkByID(id)
	if b == nil {
		return fmt.Errorf("open edit %q: %w", id, order.ErrNotFound)
	}
	m.mode = editor.Editing
	m.draft = editor.DraftFrom(*b)
	return nil
}

// CancelEdit discards the draft unconditionally. The stored list is
// untouched no matter how far the draft had been edited.
func (m *Manager) CancelEdit() {
	m.mode = editor.Idle
	m.draft = editor.Draft{}
}

// CommitEdit validates the draft and commits it: append for a create,
// replace-at-same-position for an edit. On validation failure nothing
// is committed and the editor stays open for correction.
func (m *Manager) CommitEdit(draft editor.Draft) error {
	if m.mode == editor.Idle {
		return ErrNoDraft
	}

	b, err := editor.Submit(draft)
	if err != nil {
		return err
	}

	if m.mode == editor.Editing {
		idx := m.state.IndexOf(b.ID)
		if idx < 0 {
			return fmt.Errorf("commit edit %q: %w", b.ID, order.ErrNotFound)
		}
		// The form owns only the known fields; passthrough fields on
		// the stored record survive the rewrite.
		b.CopyExtraFrom(m.state.Bookmarks[idx])
		m.state.Bookmarks[idx] = b
	} else {
		m.state.Bookmarks = append(m.state.Bookmarks, b)
	}

	m.mode = editor.Idle
	m.draft = editor.Draft{}
	m.persist()
	return nil
}

// Delete removes the bookmark with the given ID, closing the gap.
// Deleting an absent ID is a no-op, not an error.
func (m *Manager) Delete(id string) {
	idx := m.state.IndexOf(id)
	if idx < 0 {
		return
	}
	m.state.Bookmarks = append(m.state.Bookmarks[:idx], m.state.Bookmarks[idx+1:]...)
	m.persist()
}

// Reorder commits a completed drag: the source bookmark moves to the
// target's position.
func (m *Manager) Reorder(sourceID, targetID string) error {
	if sourceID == targetID {
		return nil
	}
	next, err := order.Move(m.state.Bookmarks, sourceID, targetID)
	if err != nil {
		return err
	}
	m.state.Bookmarks = next
	m.persist()
	return nil
}

// persist writes the full state. A failed write is logged and not
// retried; the in-memory list has already advanced and stays
// authoritative for the session.
func (m *Manager) persist() {
	if err := m.store.Save(m.state); err != nil {
		m.log.Error("persist bookmarks", logger.Error(err))
	}
}
