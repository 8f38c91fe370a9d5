package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calbers/startpage/internal/labels"
	"github.com/calbers/startpage/internal/model"
	"github.com/calbers/startpage/internal/tui/layout"
)

func (a App) render() string {
	if !a.gate.Authenticated() {
		return a.renderGate()
	}
	if a.form != nil {
		return a.renderModal()
	}
	return a.renderPage()
}

// renderGate draws the centered password prompt.
func (a App) renderGate() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("startpage"))
	b.WriteString("\n\n")
	b.WriteString(a.gateInput.View())
	b.WriteString("\n")
	if a.gateErr {
		b.WriteString(a.styles.ModalError.Render("Incorrect password."))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter: continue  esc: quit"))

	box := a.styles.ModalBox.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderModal draws the add/edit dialog centered on a cleared screen.
func (a App) renderModal() string {
	f := a.form
	width := layout.ModalWidth(a.width, layout.DefaultModalConfig())

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render(f.title()))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		idx   int
	}{
		{"Name", fieldName},
		{"URL", fieldURL},
		{"Favicon", fieldFavicon},
		{"Labels", fieldLabels},
	}
	for _, field := range fields {
		b.WriteString(a.styles.FieldLabel.Render(field.label))
		b.WriteString("\n")
		b.WriteString(f.inputs[field.idx].View())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.ModalError.Render(f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("tab: next field  enter: save  esc: cancel"))

	box := a.styles.ModalBox.Width(width).Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderPage draws the start page: search box, suggestion dropdown,
// filter bar and the tile grid. Line layout must stay in sync with the
// geometry in grid.go.
func (a App) renderPage() string {
	var b strings.Builder

	boxStyle := a.styles.SearchBox
	if a.focus == focusSearch {
		boxStyle = a.styles.SearchBoxFocus
	}
	b.WriteString(boxStyle.Width(searchBoxWidth).Render(a.searchInput.View()))
	b.WriteString("\n")

	b.WriteString(a.renderSuggestions())
	b.WriteString("\n")
	b.WriteString(a.renderFilterBar())
	b.WriteString("\n\n")
	b.WriteString(a.renderGrid())

	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(a.styles.Status.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.renderHelp())

	return a.styles.App.Render(b.String())
}

func (a App) renderSuggestions() string {
	rows := a.suggestions()
	shown := a.suggestionRows()
	if shown == 0 {
		return ""
	}

	start, end := layout.VisibleWindow(shown, max(a.suggestSel, 0), len(rows))

	var b strings.Builder
	for i := start; i < end; i++ {
		style := a.styles.Suggestion
		if i == a.suggestSel {
			style = a.styles.SuggestionSel
		}
		text := rows[i].text
		if rows[i].url != "" {
			text = "* " + text
		}
		b.WriteString(style.Render(layout.Truncate(text, searchBoxWidth-2)))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderFilterBar() string {
	selected := a.mgr.Filter()

	var parts []string
	for _, c := range a.filterChips() {
		style := a.styles.FilterChip
		if c.label == selected {
			style = a.styles.FilterChipSel
		}
		parts = append(parts, style.Render(c.text))
	}

	// The persisted filter may name a label no bookmark carries
	// anymore; show it so the empty view is explainable.
	if selected != labels.ShowAll && !contains(a.mgr.Labels(), selected) {
		parts = append(parts, a.styles.FilterChipSel.Render(selected))
	}

	return strings.Join(parts, "")
}

func (a App) renderGrid() string {
	visible := a.visible()
	cols := a.columns()
	gap := strings.Repeat(" ", tileGapX)

	var tiles []string
	for i := range visible {
		tiles = append(tiles, a.renderTile(&visible[i], i))
	}
	tiles = append(tiles, a.renderAddTile(len(visible)))

	var rows []string
	for start := 0; start < len(tiles); start += cols {
		end := start + cols
		if end > len(tiles) {
			end = len(tiles)
		}

		var row []string
		for _, tile := range tiles[start:end] {
			if len(row) > 0 {
				row = append(row, gap)
			}
			row = append(row, tile)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(rows, "\n")
}

func (a App) renderTile(bookmark *model.Bookmark, idx int) string {
	style := a.styles.Tile
	switch {
	case a.gesture.Dragging() && a.gesture.SourceID() == bookmark.ID:
		style = a.styles.TileDragged
	case a.gesture.Dragging() && a.dropTarget == bookmark.ID:
		style = a.styles.TileDropTarget
	case a.focus == focusGrid && idx == a.cursor:
		style = a.styles.TileSelected
	}

	inner := tileWidth - 4 // border + padding
	name := a.styles.TileName.Render(layout.Truncate(bookmark.Name, inner))
	lbls := a.styles.TileLabels.Render(layout.Truncate(strings.Join(bookmark.Labels, ", "), inner))

	return style.Width(tileWidth - 2).Render(name + "\n" + lbls)
}

func (a App) renderAddTile(idx int) string {
	style := a.styles.TileAdd
	if a.focus == focusGrid && idx == a.cursor {
		style = a.styles.TileSelected
	}
	return style.Width(tileWidth - 2).Render("+ Add shortcut\n")
}

func (a App) renderHelp() string {
	if !a.showHelp {
		return a.styles.Help.Render("?: help  /: search  a: add  q: quit")
	}

	lines := []string{
		"j/k/h/l  move        enter  open",
		"a        add         e      edit",
		"d        delete      Y      yank URL",
		"H/L      move tile   f/F    filter / show all",
		"/        search      tab    toggle focus",
		"drag     reorder     q      quit",
	}
	return a.styles.Help.Render(strings.Join(lines, "\n"))
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
