package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calbers/startpage/internal/editor"
)

// form field indices.
const (
	fieldName = iota
	fieldURL
	fieldFavicon
	fieldLabels
	fieldCount
)

// form is the modal add/edit dialog hosting the editor's draft fields.
// It owns only presentation state; the draft semantics live in the
// editor package.
type form struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	editing bool
	draftID string
	err     string
}

// newForm builds the modal pre-filled from the manager's draft.
func newForm(draft editor.Draft, editing bool) *form {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 100
	name.Width = 40
	name.SetValue(draft.Name)

	url := textinput.New()
	url.Placeholder = "https://"
	url.CharLimit = 500
	url.Width = 40
	url.SetValue(draft.URL)

	favicon := textinput.New()
	favicon.Placeholder = "Favicon URL (optional)"
	favicon.CharLimit = 500
	favicon.Width = 40
	favicon.SetValue(draft.Favicon)

	lbls := textinput.New()
	lbls.Placeholder = "label1, label2"
	lbls.CharLimit = 200
	lbls.Width = 40
	lbls.SetValue(draft.Labels)

	f := &form{
		editing: editing,
		draftID: draft.ID,
	}
	f.inputs[fieldName] = name
	f.inputs[fieldURL] = url
	f.inputs[fieldFavicon] = favicon
	f.inputs[fieldLabels] = lbls
	f.inputs[fieldName].Focus()
	return f
}

// draft collects the current field values back into an editor draft.
func (f *form) draft() editor.Draft {
	return editor.Draft{
		ID:      f.draftID,
		Name:    f.inputs[fieldName].Value(),
		URL:     f.inputs[fieldURL].Value(),
		Favicon: f.inputs[fieldFavicon].Value(),
		Labels:  f.inputs[fieldLabels].Value(),
	}
}

func (f *form) nextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *form) prevField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + fieldCount - 1) % fieldCount
	f.inputs[f.focus].Focus()
}

// updateFocused feeds a key to the focused input.
func (f *form) updateFocused(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// title returns the modal heading.
func (f *form) title() string {
	if f.editing {
		return "Edit Shortcut"
	}
	return "Add Shortcut"
}
