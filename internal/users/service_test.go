package users

import (
	"context"
	"testing"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type fakeShopAPI struct {
	me        *shop.User
	meErr     error
	updates   []shop.UpdateUserRequest
	updateErr error
}

func (f *fakeShopAPI) Me(ctx context.Context, token string) (*shop.User, error) {
	return f.me, f.meErr
}

func (f *fakeShopAPI) UpdateUser(ctx context.Context, token string, id int64, payload shop.UpdateUserRequest) error {
	f.updates = append(f.updates, payload)
	return f.updateErr
}

func TestUpdateProfileTrimsAndRefetches(t *testing.T) {
	api := &fakeShopAPI{me: &shop.User{ID: 5, FirstName: "Ana", LastName: "Petrova"}}
	svc := NewService(api)

	user, err := svc.UpdateProfile(context.Background(), session.Session{UserID: 5}, "  Ana ", " Petrova ")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if len(api.updates) != 1 || api.updates[0].FirstName != "Ana" || api.updates[0].LastName != "Petrova" {
		t.Fatalf("expected trimmed payload, got %+v", api.updates)
	}
	if user == nil || user.ID != 5 {
		t.Fatalf("expected refreshed profile, got %+v", user)
	}
}

func TestUpdateProfileRejectsBlankNames(t *testing.T) {
	svc := NewService(&fakeShopAPI{})

	for _, pair := range [][2]string{{"", "Petrova"}, {"Ana", "  "}} {
		_, err := svc.UpdateProfile(context.Background(), session.Session{UserID: 5}, pair[0], pair[1])
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("expected validation error for %q/%q, got %v", pair[0], pair[1], err)
		}
	}
}

func TestProfilePropagatesUnauthorized(t *testing.T) {
	api := &fakeShopAPI{meErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in")}
	svc := NewService(api)

	if _, err := svc.Profile(context.Background(), session.Session{}); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
