package middleware

import (
	"context"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
)

type contextKey string

const ctxSession contextKey = "session"

// SessionFromContext returns the request's derived session, or the anonymous
// session when no Session middleware ran.
func SessionFromContext(ctx context.Context) session.Session {
	if ctx == nil {
		return session.Anonymous()
	}
	if v, ok := ctx.Value(ctxSession).(session.Session); ok {
		return v
	}
	return session.Anonymous()
}

// WithSession injects a derived session into the context.
func WithSession(ctx context.Context, sess session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, sess)
}
