package orders

import (
	"context"
	"testing"
	"time"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type fakeShopAPI struct {
	orders []shop.Order
	err    error
}

func (f *fakeShopAPI) OrdersByUser(ctx context.Context, token string, userID int64) ([]shop.Order, error) {
	return f.orders, f.err
}

func TestHistorySortsNewestFirst(t *testing.T) {
	now := time.Now()
	api := &fakeShopAPI{orders: []shop.Order{
		{ID: 1, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, CreatedAt: now},
		{ID: 3, CreatedAt: now.Add(-time.Hour)},
	}}
	svc := NewService(api)

	history, err := svc.History(context.Background(), session.Session{UserID: 5})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history[0].ID != 2 || history[1].ID != 3 || history[2].ID != 1 {
		t.Fatalf("expected newest first, got %v", []int64{history[0].ID, history[1].ID, history[2].ID})
	}
}

func TestHistoryNoOrdersIsEmptyList(t *testing.T) {
	for name, api := range map[string]*fakeShopAPI{
		"remote 404": {err: pkgerrors.New(pkgerrors.CodeNotFound, "orders not found")},
		"nil slice":  {},
	} {
		svc := NewService(api)
		history, err := svc.History(context.Background(), session.Session{UserID: 5})
		if err != nil {
			t.Fatalf("%s: expected empty history, got %v", name, err)
		}
		if history == nil || len(history) != 0 {
			t.Fatalf("%s: expected empty non-nil list, got %v", name, history)
		}
	}
}

func TestFindReturnsOwnOrderOnly(t *testing.T) {
	api := &fakeShopAPI{orders: []shop.Order{{ID: 7, UserID: 5}}}
	svc := NewService(api)

	order, err := svc.Find(context.Background(), session.Session{UserID: 5}, 7)
	if err != nil || order.ID != 7 {
		t.Fatalf("expected order 7, got %v / %v", order, err)
	}

	if _, err := svc.Find(context.Background(), session.Session{UserID: 5}, 8); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for an order outside the history, got %v", err)
	}
}
