package ports

import "context"

type ctxKey int

const (
	ctxToken ctxKey = iota
	ctxSessionID
)

// WithCredential returns a context carrying a session's bearer token and
// session ID. The outbound transport reads both: the token to authenticate
// the request, the session ID to know which session to invalidate when the
// backend rejects the credential.
func WithCredential(ctx context.Context, sid, token string) context.Context {
	ctx = context.WithValue(ctx, ctxSessionID, sid)
	return context.WithValue(ctx, ctxToken, token)
}

// TokenFromContext returns the bearer token carried by ctx, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxToken).(string)
	return token
}

// SessionIDFromContext returns the session ID carried by ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(ctxSessionID).(string)
	return sid
}

// InvalidateFunc clears a session's stored credential and identity.
type InvalidateFunc func(ctx context.Context, sid, reason string)
