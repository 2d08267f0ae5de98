package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Key type is unexported so callers cannot poke at the context value directly.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries the tracing state of one inbound HTTP request.
// RequestID is unique per request; spanSeq increments 1,2,3,... for each
// outbound call made to the content API while serving it.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID returns a fresh request id.
func GenerateID() string {
	return uuid.New().String()
}

// WithRequestAndSpan stores the request id and the initial span value
// (normally 0) on a new child context.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext reads the request id, or "" when untraced.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence without advancing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID advances the span sequence and returns (requestID, spanID).
// Safe for concurrent outbound calls issued while rendering one page.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// untraced context; callers decide how to fill the gap
		return "", ""
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
