package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/workforce-analytics-backend/internal/platform/ctxutil"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderTraceID   = "X-Trace-Id"

	maxClientIDLen = 128
)

// RequestIDs tags every request with a request id and a trace id, stores
// both on the request context for log correlation and echoes them back as
// response headers.
//
// A caller-supplied X-Request-Id is kept when it is short and printable.
// The trace id comes from the active span when otelgin is mounted ahead of
// this middleware, then from X-Trace-Id, and finally falls back to the
// request id so a single request never carries two unrelated ids.
func RequestIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := clientID(c.GetHeader(HeaderRequestID))
		if reqID == "" {
			reqID = uuid.NewString()
		}

		traceID := ""
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		} else if id := clientID(c.GetHeader(HeaderTraceID)); id != "" {
			traceID = id
		} else {
			traceID = reqID
		}

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), &ctxutil.TraceData{
			TraceID:   traceID,
			RequestID: reqID,
		}))
		h := c.Writer.Header()
		h.Set(HeaderRequestID, reqID)
		h.Set(HeaderTraceID, traceID)
		c.Next()
	}
}

// clientID returns v trimmed, or "" when it is too long or has bytes
// outside printable ASCII.
func clientID(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > maxClientIDLen {
		return ""
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x21 || v[i] > 0x7e {
			return ""
		}
	}
	return v
}
