// Package requestctx carries the correlation id of one API call through
// the service and store layers, so payroll computations and leave
// decisions can be tied back to the request that triggered them.
package requestctx

import "context"

type ctxKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// GetRequestID returns the request id, or "" for background work that did
// not originate from an API call.
func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(ctxKey{}).(string); ok {
		return value
	}
	return ""
}
