// Package layout holds the pure geometry helpers the TUI renders with.
package layout

import "unicode/utf8"

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// ModalConfig constrains modal dialog sizing.
type ModalConfig struct {
	WidthPercent int // modal width as percentage of terminal width
	MinWidth     int
	MaxWidth     int
}

// DefaultModalConfig returns the sizing used by the add/edit form.
func DefaultModalConfig() ModalConfig {
	return ModalConfig{WidthPercent: 60, MinWidth: 44, MaxWidth: 72}
}

// ModalWidth computes responsive modal width from the terminal width,
// clamped between MinWidth and MaxWidth.
func ModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100

	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// VisibleWindow computes the start and end indices for a scrollable
// list. Returns (start, end) where items[start:end] should be shown.
func VisibleWindow(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

// Truncate truncates text to maxWidth runes, ellipsis included.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if utf8.RuneCountInString(text) <= maxWidth {
		return text
	}

	if maxWidth <= 1 {
		return Ellipsis
	}

	runes := []rune(text)
	return string(runes[:maxWidth-1]) + Ellipsis
}
