package menu

import "gofi/internal/keybind"

// Item is one selectable row in the menu. Everything except the two
// engine-owned fields is fixed once the item enters the engine.
type Item struct {
	// Label is the text shown in the UI. It may embed inline directives of
	// the form "img:<name>:text:<text>" which the renderer parses.
	Label string
	// Icon is an optional icon hint, either a file path or a freedesktop
	// icon name.
	Icon string
	// Action is an opaque payload whose semantics depend on the mode
	// (shell command line, URL, file path, emoji glyph, ...).
	Action string
	// SubElements are the children shown when the user drills in. Only one
	// nesting level is supported.
	SubElements []Item
	// WorkingDir is the directory the action runs in, when set.
	WorkingDir string
	// InitialScore positions favourites at the top while no search is
	// active.
	InitialScore float64
	// Data carries provider-specific payload (cache key, address,
	// auto-mode sub-type).
	Data any

	// Owned by the ranking engine; providers never touch these.
	searchScore float64
	visible     bool
}

// NewItem builds an Item with the engine fields in their initial state.
// Nesting deeper than one level is flattened: grandchildren become direct
// children of the top-level item.
func NewItem(label, icon, action string, subs []Item, workingDir string, score float64, data any) Item {
	flat := make([]Item, 0, len(subs))
	for _, sub := range subs {
		grand := sub.SubElements
		sub.SubElements = nil
		sub.visible = true
		flat = append(flat, sub)
		for _, g := range grand {
			g.SubElements = nil
			g.visible = true
			flat = append(flat, g)
		}
	}
	if len(flat) == 0 {
		flat = nil
	}
	return Item{
		Label:        label,
		Icon:         icon,
		Action:       action,
		SubElements:  flat,
		WorkingDir:   workingDir,
		InitialScore: score,
		Data:         data,
		visible:      true,
	}
}

// Visible reports whether the ranking engine left the item visible for the
// current query.
func (it *Item) Visible() bool { return it.visible }

// SearchScore returns the score the item got in the current search.
func (it *Item) SearchScore() float64 { return it.searchScore }

// SearchTarget is the string the ranking engine matches queries against.
func (it *Item) SearchTarget() string {
	return it.Action + " " + it.Label
}

// Selection is the outcome of one menu invocation.
type Selection struct {
	Item Item
	// Chord is set when a user-defined key binding confirmed the
	// selection.
	Chord *keybind.Binding
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
