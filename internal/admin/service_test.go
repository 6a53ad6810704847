package admin

import (
	"context"
	"testing"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type fakeShopAPI struct {
	createdProducts []shop.ProductPayload
	roleUpdates     map[int64]string
	statusUpdates   map[int64]string
	deletedUsers    []int64
	categoryErr     error
}

func newFakeShopAPI() *fakeShopAPI {
	return &fakeShopAPI{
		roleUpdates:   map[int64]string{},
		statusUpdates: map[int64]string{},
	}
}

func (f *fakeShopAPI) CreateProduct(ctx context.Context, token string, payload shop.ProductPayload) (*shop.Product, error) {
	f.createdProducts = append(f.createdProducts, payload)
	return &shop.Product{ID: 1, Name: payload.Name}, nil
}

func (f *fakeShopAPI) UpdateProduct(ctx context.Context, token string, id int64, payload shop.ProductPayload) error {
	return nil
}

func (f *fakeShopAPI) DeleteProduct(ctx context.Context, token string, id int64) error {
	return nil
}

func (f *fakeShopAPI) CreateCategory(ctx context.Context, token, name string) (*shop.Category, error) {
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	return &shop.Category{ID: 1, Name: name}, nil
}

func (f *fakeShopAPI) UpdateCategory(ctx context.Context, token string, id int64, name string) error {
	return nil
}

func (f *fakeShopAPI) DeleteCategory(ctx context.Context, token string, id int64) error {
	return nil
}

func (f *fakeShopAPI) ListUsers(ctx context.Context, token string) ([]shop.User, error) {
	return nil, nil
}

func (f *fakeShopAPI) UpdateUserRole(ctx context.Context, token string, id int64, role string) error {
	f.roleUpdates[id] = role
	return nil
}

func (f *fakeShopAPI) DeleteUser(ctx context.Context, token string, id int64) error {
	f.deletedUsers = append(f.deletedUsers, id)
	return nil
}

func (f *fakeShopAPI) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status string) error {
	f.statusUpdates[orderID] = status
	return nil
}

func adminSession() session.Session {
	return session.Session{UserID: 1, IsAdmin: true, Authenticated: true}
}

func TestCreateProductValidation(t *testing.T) {
	api := newFakeShopAPI()
	svc := NewService(api)

	cases := map[string]shop.ProductPayload{
		"blank name":       {Name: "  ", Price: 10, CategoryID: 1},
		"zero price":       {Name: "Pedal", Price: 0, CategoryID: 1},
		"negative price":   {Name: "Pedal", Price: -5, CategoryID: 1},
		"missing category": {Name: "Pedal", Price: 10},
	}
	for name, payload := range cases {
		if _, err := svc.CreateProduct(context.Background(), adminSession(), payload); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
	if len(api.createdProducts) != 0 {
		t.Fatalf("invalid payloads must not reach the remote API")
	}

	valid := shop.ProductPayload{Name: "Pedal", Price: 79.99, CategoryID: 1}
	product, err := svc.CreateProduct(context.Background(), adminSession(), valid)
	if err != nil || product == nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
}

func TestCreateCategorySurfacesRemoteDuplicateMessage(t *testing.T) {
	api := newFakeShopAPI()
	api.categoryErr = pkgerrors.New(pkgerrors.CodeValidation, "Category 'Instruments' already exists")
	svc := NewService(api)

	_, err := svc.CreateCategory(context.Background(), adminSession(), "Instruments")
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Message() != "Category 'Instruments' already exists" {
		t.Fatalf("expected remote message preserved, got %v", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	api := newFakeShopAPI()
	svc := NewService(api)

	if err := svc.UpdateUserRole(context.Background(), adminSession(), 9, "Admin"); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if api.roleUpdates[9] != "Admin" {
		t.Fatalf("expected role forwarded, got %q", api.roleUpdates[9])
	}

	if err := svc.UpdateUserRole(context.Background(), adminSession(), 9, "Owner"); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("unknown role must fail validation, got %v", err)
	}

	if err := svc.UpdateUserRole(context.Background(), adminSession(), 1, "Customer"); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("self-demotion must be rejected, got %v", err)
	}
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	api := newFakeShopAPI()
	svc := NewService(api)

	if err := svc.DeleteUser(context.Background(), adminSession(), 1); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("self-deletion must be rejected, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), adminSession(), 9); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(api.deletedUsers) != 1 || api.deletedUsers[0] != 9 {
		t.Fatalf("expected user 9 deleted, got %v", api.deletedUsers)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	api := newFakeShopAPI()
	svc := NewService(api)

	for _, status := range []string{"Pending", "Shipped", "Completed", "Cancelled"} {
		if err := svc.UpdateOrderStatus(context.Background(), adminSession(), 7, status); err != nil {
			t.Fatalf("status %q: %v", status, err)
		}
		if api.statusUpdates[7] != status {
			t.Fatalf("expected status %q forwarded, got %q", status, api.statusUpdates[7])
		}
	}

	if err := svc.UpdateOrderStatus(context.Background(), adminSession(), 7, "Delivered"); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("unknown status must fail validation, got %v", err)
	}
}
