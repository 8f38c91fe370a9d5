package tui

import (
	"unicode/utf8"

	"github.com/calbers/startpage/internal/labels"
	"github.com/calbers/startpage/internal/order"
)

// Fixed cell geometry. The view renders from the same numbers the
// mouse handlers hit-test against.
const (
	appPadLeft = 2
	appPadTop  = 1

	searchBoxWidth = 50
	searchBoxRows  = 3 // border + content + border

	tileWidth  = 20
	tileHeight = 4 // border + two content lines + border
	tileGapX   = 2

	maxShownSuggestions = 6
)

// columns returns how many tiles fit in a row at the current width.
func (a *App) columns() int {
	usable := a.width - 2*appPadLeft
	cols := (usable + tileGapX) / (tileWidth + tileGapX)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// suggestionRows is how many dropdown rows are currently rendered.
func (a *App) suggestionRows() int {
	if a.focus != focusSearch {
		return 0
	}
	n := a.suggestionCount()
	if n > maxShownSuggestions {
		n = maxShownSuggestions
	}
	return n
}

// filterRowY is the terminal row of the filter chip bar.
func (a *App) filterRowY() int {
	return appPadTop + searchBoxRows + a.suggestionRows() + 1
}

// gridOriginY is the terminal row where the tile grid starts.
func (a *App) gridOriginY() int {
	return a.filterRowY() + 2
}

func (a *App) searchBoxRect() order.Rect {
	return order.Rect{X: appPadLeft, Y: appPadTop, W: searchBoxWidth + 2, H: searchBoxRows}
}

// tileRect returns the bounding region of the tile at grid index i.
func (a *App) tileRect(i int) order.Rect {
	cols := a.columns()
	col := i % cols
	row := i / cols
	return order.Rect{
		X: appPadLeft + col*(tileWidth+tileGapX),
		Y: a.gridOriginY() + row*tileHeight,
		W: tileWidth,
		H: tileHeight,
	}
}

// tileAt hit-tests the grid. It returns the bookmark ID at the point
// (empty for the trailing add tile), the grid index, and whether a
// tile was hit at all.
func (a *App) tileAt(p order.Point) (id string, idx int, ok bool) {
	visible := a.visible()
	for i := 0; i <= len(visible); i++ {
		if a.tileRect(i).Contains(p) {
			if i == len(visible) {
				return "", i, true
			}
			return visible[i].ID, i, true
		}
	}
	return "", 0, false
}

// tileTargets returns the drop candidates for the current drag: every
// bookmark tile with its bounding region, in list order.
func (a *App) tileTargets() []order.Target {
	visible := a.visible()
	targets := make([]order.Target, len(visible))
	for i := range visible {
		targets[i] = order.Target{ID: visible[i].ID, Bounds: a.tileRect(i)}
	}
	return targets
}

// filterChipAt hit-tests the filter bar. Returns the label the chip
// selects (labels.ShowAll for the leading "All" chip).
func (a *App) filterChipAt(p order.Point) (string, bool) {
	if p.Y != a.filterRowY() {
		return "", false
	}

	x := appPadLeft
	for _, chip := range a.filterChips() {
		w := utf8.RuneCountInString(chip.text) + 2 // chip padding
		if p.X >= x && p.X < x+w {
			return chip.label, true
		}
		x += w
	}
	return "", false
}

// chip is one entry of the filter bar.
type chip struct {
	text  string
	label string // labels.ShowAll for the "All" chip
}

func (a *App) filterChips() []chip {
	chips := []chip{{text: "All", label: labels.ShowAll}}
	for _, l := range a.mgr.Labels() {
		chips = append(chips, chip{text: l, label: l})
	}
	return chips
}
