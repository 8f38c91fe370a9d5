package tui

import (
	"context"
	"net/url"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calbers/startpage/internal/browser"
	"github.com/calbers/startpage/internal/gate"
	"github.com/calbers/startpage/internal/labels"
	"github.com/calbers/startpage/internal/manager"
	"github.com/calbers/startpage/internal/model"
	"github.com/calbers/startpage/internal/order"
	"github.com/calbers/startpage/internal/search"
	"github.com/calbers/startpage/internal/suggest"
)

// focusArea is which part of the page receives keyboard input.
type focusArea int

const (
	focusGrid focusArea = iota
	focusSearch
)

// suggestion is one row of the search dropdown: either a remote
// autocomplete suggestion or a matching bookmark (URL set).
type suggestion struct {
	text string
	url  string
}

// suggestMsg delivers a finished suggestion fetch. Stale sequences are
// discarded so the newest query always wins.
type suggestMsg struct {
	seq   int
	items []string
	err   error
}

const maxLocalSuggestions = 3

// App is the main bubbletea model for the start page.
type App struct {
	mgr     *manager.Manager
	gate    *gate.Gate
	suggest *suggest.Client

	searchURL string
	keys      KeyMap
	styles    Styles

	focus    focusArea
	cursor   int // grid cursor; len(visible) addresses the add tile
	width    int
	height   int
	showHelp bool
	status   string

	searchInput textinput.Model
	local       []suggestion
	remote      []string
	suggestSel  int // -1 = none
	suggestSeq  int

	gateInput textinput.Model
	gateErr   bool

	form *form

	gesture    order.Gesture
	dropTarget string
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Manager       *manager.Manager
	Gate          *gate.Gate
	Suggest       *suggest.Client
	SearchURL     string
	DragThreshold int
	Keys          *KeyMap // optional, uses default if nil
	Styles        *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search the web"
	searchInput.CharLimit = 200
	searchInput.Width = searchBoxWidth - 4

	gateInput := textinput.New()
	gateInput.Placeholder = "Enter password"
	gateInput.EchoMode = textinput.EchoPassword
	gateInput.CharLimit = 100
	gateInput.Width = 30

	g := params.Gate
	if g == nil {
		g = gate.New("")
	}

	app := App{
		mgr:         params.Manager,
		gate:        g,
		suggest:     params.Suggest,
		searchURL:   params.SearchURL,
		keys:        keys,
		styles:      styles,
		focus:       focusGrid,
		searchInput: searchInput,
		gateInput:   gateInput,
		suggestSel:  -1,
		gesture:     order.NewGesture(params.DragThreshold),
		width:       80,
		height:      24,
	}

	if g.Enabled() && !g.Authenticated() {
		app.gateInput.Focus()
	}

	return app
}

// visible returns the bookmark list as currently filtered.
func (a *App) visible() []model.Bookmark {
	return a.mgr.Bookmarks()
}

// Manager exposes the underlying manager, mainly for tests.
func (a App) Manager() *manager.Manager {
	return a.mgr
}

// Cursor returns the current grid cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case suggestMsg:
		if msg.seq != a.suggestSeq {
			// A newer query superseded this fetch
			return a, nil
		}
		if msg.err != nil {
			a.remote = nil
			return a, nil
		}
		a.remote = msg.items
		return a, nil

	case tea.KeyMsg:
		if !a.gate.Authenticated() {
			return a.updateGate(msg)
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.focus == focusSearch {
			return a.updateSearch(msg)
		}
		return a.updateGrid(msg)

	case tea.MouseMsg:
		if !a.gate.Authenticated() || a.form != nil {
			return a, nil
		}
		return a.updateMouse(msg)
	}

	return a, nil
}

// updateGate handles keys while the password gate is up.
func (a App) updateGate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit
	case tea.KeyEnter:
		if a.gate.Submit(a.gateInput.Value()) {
			a.gateErr = false
			a.gateInput.Reset()
		} else {
			a.gateErr = true
			a.gateInput.Reset()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.gateInput, cmd = a.gateInput.Update(msg)
	return a, cmd
}

// updateSearch handles keys while the search box is focused.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc, tea.KeyTab:
		a.focus = focusGrid
		a.searchInput.Blur()
		a.clearSuggestions()
		return a, nil

	case tea.KeyDown:
		if n := a.suggestionCount(); n > 0 && a.suggestSel < n-1 {
			a.suggestSel++
		}
		return a, nil

	case tea.KeyUp:
		if a.suggestSel >= 0 {
			a.suggestSel--
		}
		return a, nil

	case tea.KeyEnter:
		return a.submitSearch()
	}

	prev := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)

	if a.searchInput.Value() != prev {
		return a, tea.Batch(cmd, a.queryChanged())
	}
	return a, cmd
}

// queryChanged recomputes local matches and kicks off a suggestion
// fetch for the new query.
func (a *App) queryChanged() tea.Cmd {
	query := a.searchInput.Value()
	a.suggestSel = -1
	a.suggestSeq++

	a.local = nil
	for i, res := range search.FuzzyMatch(a.mgr.AllBookmarks(), query) {
		if i >= maxLocalSuggestions {
			break
		}
		a.local = append(a.local, suggestion{text: res.Bookmark.Name, url: res.Bookmark.URL})
	}

	if query == "" || a.suggest == nil {
		a.remote = nil
		return nil
	}
	return fetchSuggestions(a.suggest, a.suggestSeq, query)
}

func fetchSuggestions(client *suggest.Client, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		items, err := client.Fetch(ctx, query)
		return suggestMsg{seq: seq, items: items, err: err}
	}
}

// suggestions returns the merged dropdown rows: bookmark matches first,
// then remote completions.
func (a *App) suggestions() []suggestion {
	rows := make([]suggestion, 0, len(a.local)+len(a.remote))
	rows = append(rows, a.local...)
	for _, s := range a.remote {
		rows = append(rows, suggestion{text: s})
	}
	return rows
}

func (a *App) suggestionCount() int {
	return len(a.local) + len(a.remote)
}

func (a *App) clearSuggestions() {
	a.local = nil
	a.remote = nil
	a.suggestSel = -1
	a.suggestSeq++ // invalidate any in-flight fetch
}

// submitSearch confirms the search box: an explicitly selected
// bookmark row opens that bookmark, anything else navigates to the
// search URL with the confirmed text.
func (a App) submitSearch() (tea.Model, tea.Cmd) {
	rows := a.suggestions()
	query := a.searchInput.Value()

	if a.suggestSel >= 0 && a.suggestSel < len(rows) {
		sel := rows[a.suggestSel]
		if sel.url != "" {
			browser.Open(sel.url)
			a.searchInput.Reset()
			a.clearSuggestions()
			return a, nil
		}
		query = sel.text
	}

	if query == "" {
		return a, nil
	}

	browser.Open(a.searchURL + url.QueryEscape(query))
	a.searchInput.Reset()
	a.clearSuggestions()
	return a, nil
}

// updateGrid handles keys while the tile grid is focused.
func (a App) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	visible := a.visible()
	cols := a.columns()
	last := len(visible) // the add tile

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp

	case key.Matches(msg, a.keys.Search):
		a.focus = focusSearch
		a.searchInput.Focus()
		return a, nil

	case msg.Type == tea.KeyTab:
		a.focus = focusSearch
		a.searchInput.Focus()
		return a, nil

	case key.Matches(msg, a.keys.Right):
		if a.cursor < last {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Down):
		if a.cursor+cols <= last {
			a.cursor += cols
		} else {
			a.cursor = last
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor-cols >= 0 {
			a.cursor -= cols
		}

	case key.Matches(msg, a.keys.Open):
		if a.cursor == last {
			a.mgr.OpenCreate()
			a.form = newForm(a.mgr.Draft(), false)
		} else if a.cursor < len(visible) {
			browser.Open(visible[a.cursor].URL)
		}

	case key.Matches(msg, a.keys.Add):
		a.mgr.OpenCreate()
		a.form = newForm(a.mgr.Draft(), false)

	case key.Matches(msg, a.keys.Edit):
		if a.cursor < len(visible) {
			if err := a.mgr.OpenEdit(visible[a.cursor].ID); err == nil {
				a.form = newForm(a.mgr.Draft(), true)
			}
		}

	case key.Matches(msg, a.keys.Delete):
		if a.cursor < len(visible) {
			a.mgr.Delete(visible[a.cursor].ID)
			if a.cursor > 0 && a.cursor >= len(a.visible()) {
				a.cursor--
			}
		}

	case key.Matches(msg, a.keys.MoveLeft):
		if a.cursor > 0 && a.cursor < len(visible) {
			a.moveTile(visible[a.cursor].ID, visible[a.cursor-1].ID)
			a.cursor--
		}

	case key.Matches(msg, a.keys.MoveRight):
		if a.cursor+1 < len(visible) {
			a.moveTile(visible[a.cursor].ID, visible[a.cursor+1].ID)
			a.cursor++
		}

	case key.Matches(msg, a.keys.CycleFilter):
		a.cycleFilter()
		a.clampCursor()

	case key.Matches(msg, a.keys.ClearFilter):
		a.mgr.SetFilter(labels.ShowAll)
		a.clampCursor()

	case key.Matches(msg, a.keys.YankURL):
		if a.cursor < len(visible) {
			if err := clipboard.WriteAll(visible[a.cursor].URL); err == nil {
				a.status = "URL copied"
			}
		}
	}

	return a, nil
}

func (a *App) moveTile(sourceID, targetID string) {
	if err := a.mgr.Reorder(sourceID, targetID); err != nil {
		a.status = err.Error()
	}
}

// cycleFilter advances the label filter: all -> first label -> ... ->
// last label -> all.
func (a *App) cycleFilter() {
	all := a.mgr.Labels()
	if len(all) == 0 {
		return
	}
	current := a.mgr.Filter()
	if current == labels.ShowAll {
		a.mgr.SetFilter(all[0])
		return
	}
	for i, l := range all {
		if l == current {
			if i+1 < len(all) {
				a.mgr.SetFilter(all[i+1])
			} else {
				a.mgr.SetFilter(labels.ShowAll)
			}
			return
		}
	}
	// Persisted filter no longer among the labels; reset
	a.mgr.SetFilter(all[0])
}

func (a *App) clampCursor() {
	if last := len(a.visible()); a.cursor > last {
		a.cursor = last
	}
}

// updateForm handles keys while the add/edit modal is open.
func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		// Cancel discards the draft unconditionally
		a.mgr.CancelEdit()
		a.form = nil
		return a, nil

	case tea.KeyTab, tea.KeyDown:
		a.form.nextField()
		return a, nil

	case tea.KeyShiftTab, tea.KeyUp:
		a.form.prevField()
		return a, nil

	case tea.KeyEnter:
		if err := a.mgr.CommitEdit(a.form.draft()); err != nil {
			// Draft stays open for correction
			a.form.err = err.Error()
			return a, nil
		}
		a.form = nil
		a.clampCursor()
		return a, nil
	}

	cmd := a.form.updateFocused(msg)
	return a, cmd
}

// updateMouse routes pointer events: press/drag/release on tiles,
// clicks on filter chips and the search box.
func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	at := order.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if a.searchBoxRect().Contains(at) {
			a.focus = focusSearch
			a.searchInput.Focus()
			return a, nil
		}
		if label, ok := a.filterChipAt(at); ok {
			a.mgr.SetFilter(label)
			a.clampCursor()
			return a, nil
		}
		if id, idx, ok := a.tileAt(at); ok {
			a.cursor = idx
			if id != "" {
				a.gesture.Press(id, at)
			} else {
				// the add tile
				a.mgr.OpenCreate()
				a.form = newForm(a.mgr.Draft(), false)
			}
		}
		return a, nil

	case tea.MouseActionMotion:
		if !a.gesture.Active() {
			return a, nil
		}
		a.gesture.Update(at)
		if a.gesture.Dragging() {
			// Visual hint only; nothing commits until release
			a.dropTarget = order.ClosestTarget(a.tileTargets(), a.gesture.Current())
		}
		return a, nil

	case tea.MouseActionRelease:
		sourceID, dragged := a.gesture.Release(at)
		a.dropTarget = ""
		if sourceID == "" {
			return a, nil
		}
		if !dragged {
			// Sub-threshold travel is a click: open the bookmark
			if b := a.mgr.Get(sourceID); b != nil {
				browser.Open(b.URL)
			}
			return a, nil
		}
		targetID := order.ClosestTarget(a.tileTargets(), at)
		if targetID != "" {
			a.moveTile(sourceID, targetID)
		}
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.render()
}
