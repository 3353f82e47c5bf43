package pkglog

import "context"

// MissingCorrelationID is returned by GetCorrelationID when ctx carries none.
const MissingCorrelationID = "[missing_correlation_id]"

type correlationIDKey struct{}

// CorrelationID reports the correlation ID stored in ctx, if any.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || cid == "" {
		return "", false
	}
	return cid, true
}

// GetCorrelationID returns the correlation ID stored in ctx or
// MissingCorrelationID.
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := CorrelationID(ctx); ok {
		return cid
	}
	return MissingCorrelationID
}

// SetCorrelationID stores cid in ctx. The router sets it before any handler
// or error translation runs.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
