package events

import "gofi/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type KeyTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Key    = KeyTracer{}
)

func (UITracer) Show(mode, prompt string) {
	logging.Trace("ui.show", map[string]interface{}{"mode": mode, "prompt": prompt})
}

func (UITracer) ItemsReady(count int) {
	logging.Trace("ui.items", map[string]interface{}{"count": count})
}

func (UITracer) Cursor(index int, label string) {
	logging.Trace("ui.cursor", map[string]interface{}{"index": index, "label": label})
}

func (UITracer) DrillIn(parent string, children int) {
	logging.Trace("ui.drill-in", map[string]interface{}{"parent": parent, "children": children})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Ranked(query string, visible int) {
	logging.Trace("filter.ranked", map[string]interface{}{"query": query, "visible": visible})
}

func (KeyTracer) Chord(key, modifiers string) {
	logging.Trace("key.chord", map[string]interface{}{"key": key, "modifiers": modifiers})
}
