package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey is the key used for the trace id in a request Context.
const TraceIDKey = "trace_id"

// ContextHandler is a wrapper that extracts the trace_id from ctx.
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
