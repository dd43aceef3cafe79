package events

import "gofi/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Spawn(program string, args []string) {
	logging.Trace("action.spawn", map[string]interface{}{"program": program, "args": args})
}

func (ActionTracer) CacheBump(key string, count int64) {
	logging.Trace("action.cache-bump", map[string]interface{}{"key": key, "count": count})
}

func (ActionTracer) Clipboard(length int) {
	logging.Trace("action.clipboard", map[string]interface{}{"length": length})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
