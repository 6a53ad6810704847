package controllers

import (
	"context"
	"net/http"

	"github.com/ZeroVik/PlayScaleFrontend/api/middleware"
	"github.com/ZeroVik/PlayScaleFrontend/api/responses"
	"github.com/ZeroVik/PlayScaleFrontend/api/validators"
	sessionpkg "github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

// AuthAPI is the slice of the shop client the auth handlers need.
type AuthAPI interface {
	Login(ctx context.Context, payload shop.LoginRequest) (string, error)
	Register(ctx context.Context, payload shop.RegisterRequest) error
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type sessionView struct {
	Token         string `json:"token,omitempty"`
	UserID        int64  `json:"userId"`
	Role          string `json:"role"`
	IsAdmin       bool   `json:"isAdmin"`
	Authenticated bool   `json:"authenticated"`
}

// AuthLogin exchanges credentials for a shop token and echoes the derived
// session so the client can render role-gated navigation immediately.
func AuthLogin(api AuthAPI, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := api.Login(r.Context(), shop.LoginRequest{
			Email:    payload.Email,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess := sessionpkg.Derive(token, timeNow())
		if !sess.Authenticated {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "login returned an unusable token"))
			return
		}

		responses.WriteSuccess(w, newSessionView(sess, true))
	}
}

// AuthRegister creates an account. Registration does not log the user in; the
// client follows up with a login call.
func AuthRegister(api AuthAPI, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := api.Register(r.Context(), shop.RegisterRequest{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Email:     payload.Email,
			Password:  payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"status": "registered"})
	}
}

// AuthSession reflects the caller's derived session without the raw token.
func AuthSession(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())
		responses.WriteSuccess(w, newSessionView(sess, false))
	}
}

func newSessionView(sess sessionpkg.Session, includeToken bool) sessionView {
	view := sessionView{
		UserID:        sess.UserID,
		Role:          sess.Role.String(),
		IsAdmin:       sess.IsAdmin,
		Authenticated: sess.Authenticated,
	}
	if includeToken {
		view.Token = sess.Token
	}
	return view
}
