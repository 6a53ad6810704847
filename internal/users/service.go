package users

import (
	"context"
	"strings"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type shopAPI interface {
	Me(ctx context.Context, token string) (*shop.User, error)
	UpdateUser(ctx context.Context, token string, id int64, payload shop.UpdateUserRequest) error
}

// Service renders and edits the caller's own profile.
type Service struct {
	api shopAPI
}

func NewService(api shopAPI) *Service {
	return &Service{api: api}
}

// Profile fetches the token owner's account.
func (s *Service) Profile(ctx context.Context, sess session.Session) (*shop.User, error) {
	return s.api.Me(ctx, sess.Token)
}

// UpdateProfile edits the caller's name fields and returns the refreshed
// profile. Email and role edits stay out of reach here.
func (s *Service) UpdateProfile(ctx context.Context, sess session.Session, firstName, lastName string) (*shop.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first and last name are required")
	}

	payload := shop.UpdateUserRequest{FirstName: firstName, LastName: lastName}
	if err := s.api.UpdateUser(ctx, sess.Token, sess.UserID, payload); err != nil {
		return nil, err
	}
	return s.api.Me(ctx, sess.Token)
}
