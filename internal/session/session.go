package session

import (
	"strconv"
	"time"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// Claim URIs as minted by the shop API's token service.
const (
	roleClaim   = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	nameIDClaim = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
)

// Session is the per-request view of the caller's bearer token. The claims are
// decoded WITHOUT signature verification: the decoded role is a UI affordance
// only and the shop API re-checks authorization on every forwarded call.
type Session struct {
	Token         string
	UserID        int64
	Role          enums.Role
	IsAdmin       bool
	Authenticated bool
	ExpiresAt     time.Time
}

// Anonymous is the session used when no valid token is present.
func Anonymous() Session {
	return Session{}
}

var parser = jwt.NewParser()

// Derive decodes the bearer token into a Session. A missing, malformed or
// expired token yields the anonymous session; it never returns an error.
func Derive(token string, now time.Time) Session {
	if token == "" {
		return Anonymous()
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Anonymous()
	}

	sess := Session{Token: token, Authenticated: true}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
		if !now.Before(exp.Time) {
			return Anonymous()
		}
	}

	if raw, ok := claims[nameIDClaim]; ok {
		sess.UserID = claimToInt64(raw)
	}
	if sess.UserID == 0 {
		return Anonymous()
	}

	if raw, ok := claims[roleClaim].(string); ok {
		if role, err := enums.ParseRole(raw); err == nil {
			sess.Role = role
		}
	}
	sess.IsAdmin = sess.Role == enums.RoleAdmin

	return sess
}

func claimToInt64(raw any) int64 {
	switch v := raw.(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return id
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
