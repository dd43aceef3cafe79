package ui

import (
	"reflect"
	"regexp"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"gofi/internal/keybind"
	"gofi/internal/logging/events"
	"gofi/internal/menu"
	"gofi/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures one menu invocation. Everything here is fixed for the
// lifetime of the model; only the provider produces new data.
type Options struct {
	Mode   string
	Prompt string
	// Password masks the typed query in the search row.
	Password   bool
	HideSearch bool
	// Lines caps the number of visible rows. Zero means "fill the
	// terminal".
	Lines int
	// InitialQuery pre-fills the search before the first render.
	InitialQuery string
	// NewOnEmpty lets enter confirm the raw query as a synthetic item
	// when nothing matches. dmenu mode wants this.
	NewOnEmpty bool

	Insensitive   bool
	Matching      menu.MatchMethod
	FuzzyMinScore float64
	IgnoredWords  []*regexp.Regexp

	CustomKeys *keybind.CustomKeys
	Detection  keybind.DetectionType
}

func (o Options) rankOptions() menu.RankOptions {
	return menu.RankOptions{
		Method:        o.Matching,
		Insensitive:   o.Insensitive,
		FuzzyMinScore: o.FuzzyMinScore,
		IgnoredWords:  o.IgnoredWords,
	}
}

type itemsLoadedMsg struct {
	data menu.ProviderData
}

// Model implements the Bubble Tea model for the selection menu.
type Model struct {
	opts     Options
	provider *menu.LockedProvider
	resolver *keybind.Resolver

	// items is the backing store; rows holds pointers into it in display
	// order, maintained by the ranking engine.
	items  []menu.Item
	rows   []*menu.Item
	query  string
	cursor int
	offset int

	loading bool
	errMsg  string
	width   int
	height  int

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	selection *menu.Selection
	err       error
	done      bool
}

// NewModel initialises the menu state for the given provider.
func NewModel(provider *menu.LockedProvider, opts Options) *Model {
	m := &Model{
		opts:     opts,
		provider: provider,
		query:    opts.InitialQuery,
		loading:  true,
	}
	if opts.CustomKeys != nil && len(opts.CustomKeys.Bindings) > 0 {
		m.resolver = keybind.NewResolver(opts.CustomKeys.Bindings, opts.Detection)
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	events.UI.Show(opts.Mode, opts.Prompt)
	return m
}

// Init is part of the tea.Model interface. The initial provider scan runs on
// a worker so the first frame paints immediately.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadItems()}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadItems() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		return itemsLoadedMsg{data: provider.Elements(nil)}
	}
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(itemsLoadedMsg{}):    m.handleItemsLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleItemsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(itemsLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.data.Changed() {
		m.setRows(loaded.data.Items)
	}
	events.UI.ItemsReady(len(m.items))
	if m.query != "" {
		m.refresh()
	} else {
		m.rerank()
	}
	return nil
}

// setRows replaces the backing item set and rebuilds the row pointers.
func (m *Model) setRows(items []menu.Item) {
	m.items = items
	m.rows = make([]*menu.Item, len(items))
	for i := range m.items {
		m.rows[i] = &m.items[i]
	}
}

// rerank rescores the current rows for the current query and resets the
// cursor to the best match.
func (m *Model) rerank() {
	menu.Rank(m.query, m.rows, m.opts.rankOptions())
	menu.Order(m.rows)
	m.cursor = 0
	m.offset = 0
	events.Filter.Ranked(m.query, m.visibleCount())
}

// refresh pushes the current query through the provider and reranks. Dynamic
// providers answer with a replacement item set; static ones report no change
// and let the ranking engine do the filtering.
func (m *Model) refresh() {
	data := m.provider.Elements(&m.query)
	if data.Changed() {
		m.setRows(data.Items)
	}
	m.rerank()
}

func (m *Model) visibleCount() int {
	n := 0
	for _, row := range m.rows {
		if row.Visible() {
			n++
		}
	}
	return n
}

// visibleRows returns the rows the renderer may show, in display order.
func (m *Model) visibleRows() []*menu.Item {
	out := make([]*menu.Item, 0, len(m.rows))
	for _, row := range m.rows {
		if row.Visible() {
			out = append(out, row)
		}
	}
	return out
}

func (m *Model) currentItem() *menu.Item {
	visible := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	visible := m.visibleRows()
	if len(visible) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(visible) {
		next = len(visible) - 1
	}
	if next == m.cursor {
		return
	}
	m.cursor = next
	events.UI.Cursor(m.cursor, visible[m.cursor].Label)
}

// confirm finishes the invocation with the item under the cursor. A nil
// chord means plain enter. When nothing is selectable and NewOnEmpty is set,
// the raw query becomes a synthetic item.
func (m *Model) confirm(chord *keybind.Binding) tea.Cmd {
	item := m.currentItem()
	if item == nil {
		if !m.opts.NewOnEmpty {
			return nil
		}
		synthetic := menu.NewItem(m.query, "", "", nil, "", 0, nil)
		item = &synthetic
	}
	m.selection = &menu.Selection{Item: *item, Chord: chord}
	chordLabel := ""
	if chord != nil {
		chordLabel = chord.Label
	}
	events.App.Selection(item.Label, chordLabel)
	m.done = true
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.err = menu.ErrNoSelection
	m.done = true
	events.App.Cancelled()
	return tea.Quit
}

// drillIn expands the children of the item under the cursor. The provider
// gets first refusal so dynamic modes can synthesise children; otherwise the
// item's own sub-elements are used.
func (m *Model) drillIn() {
	parent := m.currentItem()
	if parent == nil {
		return
	}
	data := m.provider.SubElements(*parent)
	switch {
	case data.Changed():
		m.setRows(data.Items)
	case len(parent.SubElements) > 0:
		m.setRows(menu.CloneItems(parent.SubElements))
	default:
		return
	}
	m.query = parent.Label
	events.UI.DrillIn(parent.Label, len(m.items))
	m.rerank()
}

// Selection returns the confirmed item once the program has quit.
func (m *Model) Selection() (menu.Selection, error) {
	if m.err != nil {
		return menu.Selection{}, m.err
	}
	if m.selection == nil {
		return menu.Selection{}, menu.ErrNoSelection
	}
	return *m.selection, nil
}
