package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the start page.
type Styles struct {
	App            lipgloss.Style
	SearchBox      lipgloss.Style
	SearchBoxFocus lipgloss.Style
	Suggestion     lipgloss.Style
	SuggestionSel  lipgloss.Style
	FilterChip     lipgloss.Style
	FilterChipSel  lipgloss.Style
	Tile           lipgloss.Style
	TileSelected   lipgloss.Style
	TileDragged    lipgloss.Style
	TileDropTarget lipgloss.Style
	TileAdd        lipgloss.Style
	TileName       lipgloss.Style
	TileLabels     lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalBox       lipgloss.Style
	ModalError     lipgloss.Style
	FieldLabel     lipgloss.Style
	Help           lipgloss.Style
	Status         lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}
	danger := lipgloss.AdaptiveColor{Light: "#A05050", Dark: "#B07070"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		SearchBoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Suggestion: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(3),

		SuggestionSel: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			PaddingLeft(3),

		FilterChip: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		FilterChipSel: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),

		Tile: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),

		TileSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		TileDragged: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		TileDropTarget: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		TileAdd: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Foreground(subtle).
			Padding(0, 1),

		TileName: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		TileLabels: lipgloss.NewStyle().
			Foreground(subtle),

		ModalTitle: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		ModalError: lipgloss.NewStyle().
			Foreground(danger),

		FieldLabel: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(accent),
	}
}
