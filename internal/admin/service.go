package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/enums"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type shopAPI interface {
	CreateProduct(ctx context.Context, token string, payload shop.ProductPayload) (*shop.Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, payload shop.ProductPayload) error
	DeleteProduct(ctx context.Context, token string, id int64) error

	CreateCategory(ctx context.Context, token, name string) (*shop.Category, error)
	UpdateCategory(ctx context.Context, token string, id int64, name string) error
	DeleteCategory(ctx context.Context, token string, id int64) error

	ListUsers(ctx context.Context, token string) ([]shop.User, error)
	UpdateUserRole(ctx context.Context, token string, id int64, role string) error
	DeleteUser(ctx context.Context, token string, id int64) error

	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status string) error
}

// Service is the back-office facade. The admin gate lives in middleware; the
// remote API enforces the role again on every call, so a forged token gets a
// FORBIDDEN from upstream regardless of what the gate decided.
type Service struct {
	api shopAPI
}

func NewService(api shopAPI) *Service {
	return &Service{api: api}
}

// CreateProduct validates and creates a catalog entry.
func (s *Service) CreateProduct(ctx context.Context, sess session.Session, payload shop.ProductPayload) (*shop.Product, error) {
	if err := validateProduct(payload); err != nil {
		return nil, err
	}
	return s.api.CreateProduct(ctx, sess.Token, payload)
}

// UpdateProduct validates and edits a catalog entry.
func (s *Service) UpdateProduct(ctx context.Context, sess session.Session, id int64, payload shop.ProductPayload) error {
	if err := validateProduct(payload); err != nil {
		return err
	}
	return s.api.UpdateProduct(ctx, sess.Token, id, payload)
}

// DeleteProduct removes a catalog entry.
func (s *Service) DeleteProduct(ctx context.Context, sess session.Session, id int64) error {
	return s.api.DeleteProduct(ctx, sess.Token, id)
}

// CreateCategory adds a category. Duplicate names surface as the remote
// validation message.
func (s *Service) CreateCategory(ctx context.Context, sess session.Session, name string) (*shop.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	return s.api.CreateCategory(ctx, sess.Token, name)
}

// UpdateCategory renames a category.
func (s *Service) UpdateCategory(ctx context.Context, sess session.Session, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	return s.api.UpdateCategory(ctx, sess.Token, id, name)
}

// DeleteCategory removes a category.
func (s *Service) DeleteCategory(ctx context.Context, sess session.Session, id int64) error {
	return s.api.DeleteCategory(ctx, sess.Token, id)
}

// ListUsers fetches every account for the user management table.
func (s *Service) ListUsers(ctx context.Context, sess session.Session) ([]shop.User, error) {
	users, err := s.api.ListUsers(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []shop.User{}
	}
	return users, nil
}

// UpdateUserRole reassigns an account role. Admins cannot demote themselves,
// which keeps at least this session's admin access intact.
func (s *Service) UpdateUserRole(ctx context.Context, sess session.Session, id int64, rawRole string) error {
	role, err := enums.ParseRole(rawRole)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	if id == sess.UserID && role != enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeValidation, "cannot remove your own admin role")
	}
	return s.api.UpdateUserRole(ctx, sess.Token, id, role.String())
}

// DeleteUser removes an account. Self-deletion is rejected.
func (s *Service) DeleteUser(ctx context.Context, sess session.Session, id int64) error {
	if id == sess.UserID {
		return pkgerrors.New(pkgerrors.CodeValidation, "cannot delete your own account")
	}
	return s.api.DeleteUser(ctx, sess.Token, id)
}

// UpdateOrderStatus moves an order through its lifecycle.
func (s *Service) UpdateOrderStatus(ctx context.Context, sess session.Session, orderID int64, rawStatus string) error {
	status, err := enums.ParseOrderStatus(rawStatus)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	return s.api.UpdateOrderStatus(ctx, sess.Token, orderID, status.String())
}

func validateProduct(payload shop.ProductPayload) error {
	if strings.TrimSpace(payload.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if payload.Price <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("price must be positive, got %v", payload.Price))
	}
	if payload.CategoryID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	return nil
}
