package ui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gofi/internal/keybind"
	"gofi/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}

	ev := translateKey(key, m.opts.Detection)
	if m.resolver != nil {
		if binding := m.resolver.Resolve(ev); binding != nil {
			events.Key.Chord(string(ev.Key), ev.Modifiers.String())
			return m.confirm(binding)
		}
	}

	switch key.Type {
	case tea.KeyEscape, tea.KeyCtrlC:
		return m.cancel()
	case tea.KeyEnter:
		return m.confirm(nil)
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeFilterRune()
		return nil
	case tea.KeyTab:
		m.drillIn()
		return nil
	case tea.KeyUp, tea.KeyCtrlP:
		m.moveCursor(-1)
		return nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.moveCursor(1)
		return nil
	case tea.KeyCtrlU:
		if m.query != "" {
			m.query = ""
			m.filterCursorDirty = true
			m.errMsg = ""
			m.refresh()
		}
		return nil
	case tea.KeySpace:
		m.appendToFilter(" ")
		return nil
	case tea.KeyRunes:
		if key.Alt {
			return nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.appendToFilter(string(key.Runes))
		return nil
	}
	return nil
}

func (m *Model) appendToFilter(text string) {
	if text == "" || m.loading {
		return
	}
	m.query += text
	m.filterCursorDirty = true
	m.errMsg = ""
	events.Filter.Append(m.query)
	m.refresh()
}

func (m *Model) removeFilterRune() {
	if m.loading {
		return
	}
	runes := []rune(m.query)
	if len(runes) == 0 {
		return
	}
	m.query = string(runes[:len(runes)-1])
	m.filterCursorDirty = true
	m.errMsg = ""
	events.Filter.Backspace(m.query)
	m.refresh()
}

// translateKey maps a terminal key press onto the chord event model. Shifted
// letters arrive as uppercase runes; shifted symbols are only recoverable
// through the unshift table, which matters for code-based detection.
func translateKey(msg tea.KeyMsg, detection keybind.DetectionType) keybind.Event {
	ev := keybind.Event{}
	if msg.Alt {
		ev.Modifiers |= keybind.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			break
		}
		r := msg.Runes[0]
		ev.Rune = r
		switch {
		case unicode.IsUpper(r):
			ev.Modifiers |= keybind.ModShift
			ev.Key = keybind.Key(strings.ToLower(string(r)))
		default:
			if base, shifted := keybind.Unshift(r); shifted && detection == keybind.DetectCode {
				ev.Modifiers |= keybind.ModShift
				ev.Key = base
			} else {
				ev.Key = keybind.Key(string(r))
			}
		}
	case tea.KeySpace:
		ev.Key = keybind.KeySpace
		ev.Rune = ' '
	case tea.KeyEnter:
		ev.Key = keybind.KeyEnter
	case tea.KeyEscape:
		ev.Key = keybind.KeyEscape
	case tea.KeyTab:
		ev.Key = keybind.KeyTab
	case tea.KeyBackspace:
		ev.Key = keybind.KeyBackspace
	case tea.KeyDelete:
		ev.Key = keybind.KeyDelete
	case tea.KeyInsert:
		ev.Key = keybind.KeyInsert
	case tea.KeyHome:
		ev.Key = keybind.KeyHome
	case tea.KeyEnd:
		ev.Key = keybind.KeyEnd
	case tea.KeyPgUp:
		ev.Key = keybind.KeyPageUp
	case tea.KeyPgDown:
		ev.Key = keybind.KeyPageDown
	case tea.KeyUp:
		ev.Key = keybind.KeyUp
	case tea.KeyDown:
		ev.Key = keybind.KeyDown
	case tea.KeyLeft:
		ev.Key = keybind.KeyLeft
	case tea.KeyRight:
		ev.Key = keybind.KeyRight
	default:
		if name := msg.String(); strings.HasPrefix(name, "ctrl+") {
			ev.Modifiers |= keybind.ModControl
			ev.Key = keybind.Key(strings.TrimPrefix(name, "ctrl+"))
		}
	}

	ev.Code = keybind.CodeFor(ev.Key)
	return ev
}

// filterDisplay is the query as shown in the search row, masked when the
// menu runs in password mode.
func (m *Model) filterDisplay() string {
	if !m.opts.Password {
		return m.query
	}
	return strings.Repeat("*", len([]rune(m.query)))
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := m.opts.Prompt
	if prompt != "" {
		prompt += " "
	}
	if styles.Prompt != nil {
		prompt = styles.Prompt.Render(prompt)
	}
	text := m.filterDisplay()
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	return prompt + render(styles.Filter, text) + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
