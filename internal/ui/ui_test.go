package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"gofi/internal/keybind"
	"gofi/internal/menu"
)

type staticProvider struct {
	items []menu.Item
}

func (p *staticProvider) Elements(query *string) menu.ProviderData {
	if query == nil {
		return menu.ProviderData{Items: menu.CloneItems(p.items)}
	}
	return menu.ProviderData{}
}

func (p *staticProvider) SubElements(parent menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}

func newTestModel(t *testing.T, items []menu.Item, opts Options) *Model {
	t.Helper()
	opts.Insensitive = true
	m := NewModel(menu.NewLockedProvider(&staticProvider{items: items}), opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(itemsLoadedMsg{data: m.provider.Elements(nil)})
	return m
}

func typeString(m *Model, text string) {
	for _, r := range text {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func appItems() []menu.Item {
	return []menu.Item{
		menu.NewItem("Files", "system-file-manager", "nautilus", nil, "", 0, nil),
		menu.NewItem("Firefox", "firefox", "firefox %u", nil, "", 0, nil),
		menu.NewItem("Terminal", "utilities-terminal", "xterm", nil, "", 0, nil),
	}
}

func TestTypingFiltersAndEnterConfirms(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "drun"})
	typeString(m, "fire")

	visible := m.visibleRows()
	if len(visible) != 1 || visible[0].Label != "Firefox" {
		t.Fatalf("visible rows = %v, want just Firefox", visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel, err := m.Selection()
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if sel.Item.Action != "firefox %u" {
		t.Fatalf("selected action = %q, want firefox %%u", sel.Item.Action)
	}
	if sel.Chord != nil {
		t.Fatalf("plain enter must not carry a chord")
	}
}

func TestEscapeCancels(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "drun"})
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	if _, err := m.Selection(); err != menu.ErrNoSelection {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if !m.done {
		t.Fatalf("escape must finish the model")
	}
}

func TestBackspaceWidensResults(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "drun"})
	typeString(m, "fi")
	if got := m.visibleCount(); got != 2 {
		t.Fatalf("visible after 'fi' = %d, want 2 (Files, Firefox)", got)
	}
	typeString(m, "r")
	if got := m.visibleCount(); got != 1 {
		t.Fatalf("visible after 'fir' = %d, want 1", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.visibleCount(); got != 2 {
		t.Fatalf("visible after backspace = %d, want 2", got)
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "drun"})

	first := m.currentItem()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	second := m.currentItem()
	if first.Label == second.Label {
		t.Fatalf("down did not move the cursor")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.currentItem().Label; got != first.Label {
		t.Fatalf("up returned to %q, want %q", got, first.Label)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.currentItem().Label; got != first.Label {
		t.Fatalf("cursor must clamp at the top, got %q", got)
	}
}

func TestCustomChordConfirms(t *testing.T) {
	keys := &keybind.CustomKeys{
		Bindings: []keybind.Binding{
			{Key: "2", Code: keybind.CodeFor("2"), Modifiers: keybind.ModAlt, Label: "open in tab"},
		},
	}
	m := newTestModel(t, appItems(), Options{Mode: "drun", CustomKeys: keys})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	sel, err := m.Selection()
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if sel.Chord == nil || sel.Chord.Label != "open in tab" {
		t.Fatalf("chord = %+v, want the alt+2 binding", sel.Chord)
	}
}

func TestCustomChordMatchesWithExtraModifiers(t *testing.T) {
	keys := &keybind.CustomKeys{
		Bindings: []keybind.Binding{
			{Key: "2", Code: keybind.CodeFor("2"), Modifiers: keybind.ModAlt, Label: "open in tab"},
		},
	}
	m := newTestModel(t, appItems(), Options{Mode: "drun", CustomKeys: keys, Detection: keybind.DetectCode})

	// Shift+Alt+2 produces '@' on a US layout; code detection still
	// recognises the chord.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'@'}, Alt: true})
	sel, err := m.Selection()
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if sel.Chord == nil || sel.Chord.Label != "open in tab" {
		t.Fatalf("chord = %+v, want the alt+2 binding via shift+alt+2", sel.Chord)
	}
}

func TestNewOnEmptyConfirmsTypedText(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "dmenu", NewOnEmpty: true})
	typeString(m, "zzz no such entry")
	if got := m.visibleCount(); got != 0 {
		t.Fatalf("visible = %d, want 0", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel, err := m.Selection()
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if sel.Item.Label != "zzz no such entry" {
		t.Fatalf("label = %q, want the typed text", sel.Item.Label)
	}
}

func TestEnterWithoutMatchStaysOpen(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "drun"})
	typeString(m, "zzz")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.done {
		t.Fatalf("enter with no match must not finish without NewOnEmpty")
	}
}

func TestDrillInShowsChildren(t *testing.T) {
	parent := menu.NewItem("Shell Tool", "", "shelltool", []menu.Item{
		menu.NewItem("Shell Tool New Window", "", "shelltool --new-window", nil, "", 0, nil),
	}, "", 0, nil)
	m := newTestModel(t, []menu.Item{parent}, Options{Mode: "drun"})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.query != "Shell Tool" {
		t.Fatalf("query = %q, want the parent label", m.query)
	}
	if len(m.items) != 1 || m.items[0].Label != "Shell Tool New Window" {
		t.Fatalf("items = %v, want the sub-action", m.items)
	}
}

func TestPasswordMasksQuery(t *testing.T) {
	m := newTestModel(t, nil, Options{Mode: "dmenu", Password: true, NewOnEmpty: true})
	typeString(m, "hunter2")

	view := ansi.Strip(m.View())
	if strings.Contains(view, "hunter2") {
		t.Fatalf("view leaks the query:\n%s", view)
	}
	if !strings.Contains(view, "*******") {
		t.Fatalf("view missing mask:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel, err := m.Selection()
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if sel.Item.Label != "hunter2" {
		t.Fatalf("selection must carry the real text, got %q", sel.Item.Label)
	}
}

func TestViewRendersRows(t *testing.T) {
	m := newTestModel(t, appItems(), Options{Mode: "drun", Prompt: "apps"})
	view := ansi.Strip(m.View())
	for _, label := range []string{"Files", "Firefox", "Terminal"} {
		if !strings.Contains(view, label) {
			t.Fatalf("view missing %q:\n%s", label, view)
		}
	}
	if !strings.Contains(view, "apps") {
		t.Fatalf("view missing prompt:\n%s", view)
	}
}

func TestLinesCapsViewport(t *testing.T) {
	items := make([]menu.Item, 0, 10)
	for _, l := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		items = append(items, menu.NewItem(l, "", l, nil, "", 0, nil))
	}
	m := newTestModel(t, items, Options{Mode: "dmenu", Lines: 3})

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "7 more") {
		t.Fatalf("view missing overflow marker:\n%s", view)
	}

	for i := 0; i < 9; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.currentItem().Label; got != "j" {
		t.Fatalf("cursor = %q, want the last row", got)
	}
	start, end := m.viewport(10)
	if start != 7 || end != 10 {
		t.Fatalf("viewport = [%d,%d), want [7,10)", start, end)
	}
}

func TestHintsRendered(t *testing.T) {
	keys := &keybind.CustomKeys{
		Bindings: []keybind.Binding{
			{Key: "o", Modifiers: keybind.ModControl, Label: "open folder", Visible: true},
		},
		Hint: &keybind.Hint{Text: "pick an application", Location: keybind.HintTop},
	}
	m := newTestModel(t, appItems(), Options{Mode: "drun", CustomKeys: keys})

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "pick an application") {
		t.Fatalf("view missing top hint:\n%s", view)
	}
	if !strings.Contains(view, "open folder") {
		t.Fatalf("view missing binding hint:\n%s", view)
	}
}
