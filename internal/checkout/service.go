package checkout

import (
	"context"

	"github.com/ZeroVik/PlayScaleFrontend/internal/cart"
	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/types"
)

type shopAPI interface {
	GetCart(ctx context.Context, token string, userID int64) (*shop.Cart, error)
	PlaceOrder(ctx context.Context, token string, payload shop.PlaceOrderRequest) (*shop.Order, error)
	ClearCart(ctx context.Context, token string, userID int64) error
}

type mirrorStore interface {
	Clear(ctx context.Context, userID int64) error
}

// Receipt is the rendered checkout confirmation.
type Receipt struct {
	Order *shop.Order `json:"order"`
}

// Service turns the current cart into an order. The submitted total is the
// discounted grand total, recomputed from the live cart at submit time rather
// than trusted from the request.
type Service struct {
	api    shopAPI
	mirror mirrorStore
	logg   *logger.Logger
}

func NewService(api shopAPI, mirror mirrorStore, logg *logger.Logger) *Service {
	return &Service{api: api, mirror: mirror, logg: logg}
}

// Submit validates the address, snapshots the cart and places the order. On
// success the cart is emptied; on any failure the cart is left untouched so
// the user can retry.
func (s *Service) Submit(ctx context.Context, sess session.Session, address types.Address) (*Receipt, error) {
	if !address.IsComplete() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is incomplete")
	}

	current, err := s.api.GetCart(ctx, sess.Token, sess.UserID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot checkout an empty cart")
		}
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot checkout an empty cart")
	}
	cart.Recompute(current)

	payload := shop.PlaceOrderRequest{
		UserID:      sess.UserID,
		TotalAmount: current.GrandTotal.InexactFloat64(),
		Address:     address,
	}
	for _, item := range current.Items {
		payload.OrderDetails = append(payload.OrderDetails, shop.OrderDetailPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.InexactFloat64(),
		})
	}

	order, err := s.api.PlaceOrder(ctx, sess.Token, payload)
	if err != nil {
		return nil, err
	}

	// The order is placed; emptying the cart is cleanup and must not fail
	// the confirmation.
	if err := s.api.ClearCart(ctx, sess.Token, sess.UserID); err != nil {
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			s.logg.Warn(ctx, "failed to clear remote cart after checkout")
		}
	}
	if err := s.mirror.Clear(ctx, sess.UserID); err != nil {
		s.logg.Warn(ctx, "failed to clear cart mirror after checkout")
	}

	return &Receipt{Order: order}, nil
}
