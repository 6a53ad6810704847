package orders

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type shopAPI interface {
	OrdersByUser(ctx context.Context, token string, userID int64) ([]shop.Order, error)
}

// Service renders the order history view.
type Service struct {
	api shopAPI
}

func NewService(api shopAPI) *Service {
	return &Service{api: api}
}

// History lists the caller's orders, newest first. A user with no orders gets
// an empty list, whether the remote side reports an empty set or a 404.
func (s *Service) History(ctx context.Context, sess session.Session) ([]shop.Order, error) {
	orders, err := s.api.OrdersByUser(ctx, sess.Token, sess.UserID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return []shop.Order{}, nil
		}
		return nil, err
	}
	if orders == nil {
		orders = []shop.Order{}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Find returns one order from the caller's history.
func (s *Service) Find(ctx context.Context, sess session.Session, orderID int64) (*shop.Order, error) {
	history, err := s.History(ctx, sess)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == orderID {
			return &history[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %d not found", orderID))
}
