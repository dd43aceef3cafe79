package events

import "gofi/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Fork(pid int) {
	logging.Trace("app.fork", map[string]interface{}{"pid": pid})
}

func (AppTracer) Selection(label, chord string) {
	logging.Trace("app.selection", map[string]interface{}{"label": label, "chord": chord})
}

func (AppTracer) Cancelled() {
	logging.Trace("app.cancelled", nil)
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}
