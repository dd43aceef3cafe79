package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"gofi/internal/keybind"
	"gofi/internal/menu"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)

	for _, hint := range m.hintLines(keybind.HintTop) {
		lines = append(lines, styledLine{text: hint, style: styles.Hint})
	}
	if !m.opts.HideSearch {
		lines = append(lines, styledLine{text: m.filterPrompt()})
	}

	if m.loading {
		lines = append(lines, styledLine{text: "Loading…", style: styles.Loading})
	} else {
		visible := m.visibleRows()
		if len(visible) == 0 {
			msg := "(no entries)"
			if m.query != "" {
				msg = fmt.Sprintf("No matches for %q", m.filterDisplay())
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			start, end := m.viewport(len(visible))
			for idx := start; idx < end; idx++ {
				lines = append(lines, m.buildItemLine(visible[idx], idx))
			}
			if end < len(visible) {
				more := fmt.Sprintf("… %d more", len(visible)-end)
				lines = append(lines, styledLine{text: more, style: styles.Info})
			}
		}
	}

	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	for _, hint := range m.hintLines(keybind.HintBottom) {
		lines = append(lines, styledLine{text: hint, style: styles.Hint})
	}

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) buildItemLine(item *menu.Item, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	_, text := menu.ParseLabel(item.Label)
	if text == "" {
		text = item.Label
	}
	fullText := indicator + " " + text
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// hintLines renders the custom-key hints configured for the given location.
func (m *Model) hintLines(loc keybind.HintLocation) []string {
	keys := m.opts.CustomKeys
	if keys == nil {
		return nil
	}
	var out []string
	if keys.Hint != nil && keys.Hint.Location == loc && keys.Hint.Text != "" {
		out = append(out, keys.Hint.Text)
	}
	if loc == keybind.HintBottom {
		var parts []string
		for _, b := range keys.Bindings {
			if !b.Visible || b.Label == "" {
				continue
			}
			chord := string(b.Key)
			if mods := b.Modifiers.String(); mods != "" {
				chord = mods + "+" + chord
			}
			parts = append(parts, fmt.Sprintf("%s %s", chord, b.Label))
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, "  "))
		}
	}
	return out
}

// viewport returns the half-open range of visible rows to render, keeping
// the cursor inside the window.
func (m *Model) viewport(total int) (int, int) {
	max := m.maxVisibleRows()
	if max <= 0 || total <= max {
		m.offset = 0
		return 0, total
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+max {
		m.offset = m.cursor - max + 1
	}
	if m.offset+max > total {
		m.offset = total - max
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m.offset, m.offset + max
}

func (m *Model) maxVisibleRows() int {
	if m.opts.Lines > 0 {
		return m.opts.Lines
	}
	if m.height <= 0 {
		return -1
	}
	used := 0
	if !m.opts.HideSearch {
		used++
	}
	if m.errMsg != "" {
		used++
	}
	used += len(m.hintLines(keybind.HintTop))
	used += len(m.hintLines(keybind.HintBottom))
	remain := m.height - used - 1
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if lipgloss.Width(text) > width {
			text = truncate.StringWithTail(text, uint(width-1), "…")
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
