// Package keybind models physical key events and resolves user-defined
// chords against them.
package keybind

import (
	"fmt"
	"sort"
	"strings"
)

// Key is the symbolic value of a key, normalized to its lowercase unshifted
// spelling ("a", "2", "f5", "escape", ...). KeyNone marks values the
// translation layer could not map.
type Key string

const (
	KeyNone      Key = ""
	KeyEscape    Key = "escape"
	KeyEnter     Key = "enter"
	KeySpace     Key = "space"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyInsert    Key = "insert"
	KeyDelete    Key = "delete"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPageUp    Key = "pgup"
	KeyPageDown  Key = "pgdown"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
)

// Modifier is a bitmask over the modifier keys. The zero value means "no
// modifiers"; an event with unmapped modifier state keeps ModNone so it can
// be told apart from unknown masks by the translation layer.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
	ModMeta
	ModCapsLock

	ModNone Modifier = 0
)

var modifierNames = map[string]Modifier{
	"shift":    ModShift,
	"control":  ModControl,
	"ctrl":     ModControl,
	"alt":      ModAlt,
	"super":    ModSuper,
	"meta":     ModMeta,
	"capslock": ModCapsLock,
	"none":     ModNone,
}

// ParseModifier resolves a single modifier name.
func ParseModifier(s string) (Modifier, error) {
	if m, ok := modifierNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return ModNone, fmt.Errorf("invalid modifier %q", s)
}

// Contains reports whether every modifier in sub is also set in m.
func (m Modifier) Contains(sub Modifier) bool {
	return m&sub == sub
}

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var names []string
	for name, bit := range modifierNames {
		if bit != ModNone && m.Contains(bit) && name != "ctrl" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "+")
}

// Binding is one user-defined chord.
type Binding struct {
	Key       Key
	Code      uint32
	Modifiers Modifier
	Label     string
	// Visible bindings are rendered as hints in the UI.
	Visible bool
}

// HintLocation places the custom-key hint text.
type HintLocation int

const (
	HintTop HintLocation = iota
	HintBottom
)

// Hint is the optional free-text help line shown with custom bindings.
type Hint struct {
	Text     string
	Location HintLocation
}

// CustomKeys bundles the user's chords with their optional hint.
type CustomKeys struct {
	Bindings []Binding
	Hint     *Hint
}

// DetectionType selects whether chords match on the hardware key code or on
// the symbolic key value. Layouts diverge on the value, which is why both
// paths exist.
type DetectionType int

const (
	DetectValue DetectionType = iota
	DetectCode
)

// ParseDetectionType maps the CLI/config spelling to a DetectionType.
func ParseDetectionType(s string) (DetectionType, error) {
	switch s {
	case "value":
		return DetectValue, nil
	case "code":
		return DetectCode, nil
	}
	return DetectValue, fmt.Errorf("invalid key detection type %q", s)
}

func (d DetectionType) String() string {
	if d == DetectCode {
		return "code"
	}
	return "value"
}

// Event is one physical key press: the symbolic value, the hardware code,
// and the active modifier set.
type Event struct {
	Key       Key
	Code      uint32
	Modifiers Modifier
	// Rune is the printable character the press produced, if any.
	Rune rune
}

// Resolver matches events against the configured chords.
type Resolver struct {
	bindings  []Binding
	detection DetectionType
}

// NewResolver builds a resolver over the given bindings.
func NewResolver(bindings []Binding, detection DetectionType) *Resolver {
	return &Resolver{bindings: bindings, detection: detection}
}

// Resolve returns the first binding the event satisfies. The event may carry
// extra modifiers beyond those the binding declares: a chord bound to Alt+2
// also fires on Shift+Alt+2.
func (r *Resolver) Resolve(ev Event) *Binding {
	for i := range r.bindings {
		b := &r.bindings[i]
		var keyMatch bool
		if r.detection == DetectCode {
			keyMatch = b.Code != 0 && b.Code == ev.Code
		} else {
			keyMatch = b.Key != KeyNone && b.Key == ev.Key
		}
		if keyMatch && ev.Modifiers.Contains(b.Modifiers) {
			return b
		}
	}
	return nil
}
