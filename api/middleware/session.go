package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/ZeroVik/PlayScaleFrontend/api/responses"
	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
)

// Session derives the caller's session from the Authorization header and seeds
// the request context with it. The token is decoded without verification; a
// missing or unusable token yields the anonymous session rather than an error,
// so public endpoints can share this middleware.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			sess := session.Derive(token, time.Now())

			ctx := WithSession(r.Context(), sess)
			if logg != nil && sess.Authenticated {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id": sess.UserID,
					"role":    sess.Role.String(),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous callers.
func RequireAuth(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if !sess.Authenticated {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates the back-office. Authenticated non-admins get FORBIDDEN,
// not UNAUTHORIZED. The decoded role is unverified, so the remote API still
// re-checks it on every forwarded call.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if !sess.Authenticated {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in"))
				return
			}
			if !sess.IsAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
