package events

import "gofi/internal/logging"

type ProviderTracer struct{}

var Provider = ProviderTracer{}

func (ProviderTracer) InitialScan(mode string, count int, elapsedMs int64) {
	logging.Trace("provider.initial", map[string]interface{}{
		"mode":    mode,
		"count":   count,
		"elapsed": elapsedMs,
	})
}

func (ProviderTracer) Refresh(mode, query string, count int) {
	logging.Trace("provider.refresh", map[string]interface{}{
		"mode":  mode,
		"query": query,
		"count": count,
	})
}

func (ProviderTracer) Route(query, target string) {
	logging.Trace("provider.route", map[string]interface{}{"query": query, "target": target})
}

func (ProviderTracer) Error(mode string, err error) {
	if err == nil {
		return
	}
	logging.Trace("provider.error", map[string]interface{}{"mode": mode, "error": err.Error()})
}
