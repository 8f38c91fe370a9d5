// Package picker renders the quick-search result list as a standalone
// bubbletea program. It shares the start page's grayscale-plus-teal
// palette so `startpage find` feels like the page itself.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calbers/startpage/internal/model"
	"github.com/calbers/startpage/internal/search"
	"github.com/calbers/startpage/internal/tui/layout"
)

// maxVisibleResults caps the rows rendered at once; longer result
// lists scroll with the cursor.
const maxVisibleResults = 8

var (
	primary = lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle  = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent  = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}

	headerStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(primary)

	nameSelStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	matchStyle = lipgloss.NewStyle().
			Foreground(accent).
			Underline(true)

	matchSelStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(subtle)

	urlStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtle)
)

// Picker is the result-selection model for quick search.
type Picker struct {
	results   []search.Result
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a picker over the given search results.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			p.cancelled = true
			return p, tea.Quit

		case "enter":
			p.selected = true
			return p, tea.Quit

		case "down", "j":
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}

		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — %d results", p.query, len(p.results))))
	b.WriteString("\n\n")

	start, end := layout.VisibleWindow(maxVisibleResults, p.cursor, len(p.results))
	for i := start; i < end; i++ {
		result := p.results[i]
		selected := i == p.cursor

		marker := "  "
		if selected {
			marker = "> "
		}

		b.WriteString(marker)
		b.WriteString(highlightName(result, selected))
		for _, label := range result.Bookmark.Labels {
			b.WriteString(" " + chipStyle.Render("["+label+"]"))
		}
		b.WriteString("\n")

		url := layout.Truncate(result.Bookmark.URL, p.width-5)
		b.WriteString("    " + urlStyle.Render(url) + "\n")
	}

	if end < len(p.results) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  … %d more", len(p.results)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move · enter open · q/esc cancel"))

	return b.String()
}

// highlightName renders the bookmark name with the fuzzy-matched runes
// underlined. MatchedIndexes are byte offsets into the name.
func highlightName(result search.Result, selected bool) string {
	base, match := nameStyle, matchStyle
	if selected {
		base, match = nameSelStyle, matchSelStyle
	}

	matched := make(map[int]bool, len(result.MatchedIndexes))
	for _, idx := range result.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range result.Bookmark.Name {
		if matched[i] {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedBookmark returns the chosen bookmark, or nil when the picker
// was cancelled or quit without a choice.
func (p Picker) SelectedBookmark() *model.Bookmark {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Bookmark
	}
	return nil
}

// Cancelled reports whether the user backed out.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
