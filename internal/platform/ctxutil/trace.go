package ctxutil

import "context"

type traceDataKey struct{}

type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if ctx == nil {
		return nil
	}
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}

// LogFields returns the request/trace identifiers as logger key/values.
func LogFields(ctx context.Context) []interface{} {
	td := GetTraceData(ctx)
	if td == nil {
		return nil
	}
	out := make([]interface{}, 0, 4)
	if td.TraceID != "" {
		out = append(out, "trace_id", td.TraceID)
	}
	if td.RequestID != "" {
		out = append(out, "request_id", td.RequestID)
	}
	return out
}
