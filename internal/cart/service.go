package cart

import (
	"context"
	"fmt"

	"github.com/ZeroVik/PlayScaleFrontend/internal/session"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type shopAPI interface {
	GetCart(ctx context.Context, token string, userID int64) (*shop.Cart, error)
	AddItem(ctx context.Context, token string, payload shop.AddCartItemRequest) error
	UpdateQuantity(ctx context.Context, token string, cartItemID int64, quantity int) error
	RemoveItem(ctx context.Context, token string, cartItemID int64) error
	ClearCart(ctx context.Context, token string, userID int64) error
	GetProduct(ctx context.Context, id int64) (*shop.Product, error)
	ListProducts(ctx context.Context) ([]shop.Product, error)
}

type mirrorStore interface {
	Save(ctx context.Context, c *shop.Cart) error
	Load(ctx context.Context, userID int64) (*shop.Cart, error)
	Clear(ctx context.Context, userID int64) error
	MergeItem(ctx context.Context, userID int64, line shop.CartItem) (*shop.Cart, error)
}

type itemGuard interface {
	Acquire(ctx context.Context, cartItemID int64) (func(), error)
}

// View is the rendered cart: the recomputed remote snapshot plus product
// images stitched in from the catalog. FromMirror marks a fallback render
// served while the remote API was unreachable.
type View struct {
	Cart       *shop.Cart       `json:"cart"`
	Images     map[int64]string `json:"images,omitempty"`
	FromMirror bool             `json:"fromMirror,omitempty"`
}

// Service owns cart reads and mutations. Every mutation persists remotely
// first and applies locally only after the remote call succeeds, so a failed
// call leaves the rendered cart untouched.
type Service struct {
	api    shopAPI
	mirror mirrorStore
	guard  itemGuard
	logg   *logger.Logger
}

func NewService(api shopAPI, mirror mirrorStore, guard itemGuard, logg *logger.Logger) *Service {
	return &Service{
		api:    api,
		mirror: mirror,
		guard:  guard,
		logg:   logg,
	}
}

// View fetches and renders the user's cart. A missing remote cart renders as
// the empty state. When the remote API is unreachable the last mirrored
// snapshot is served instead, marked FromMirror.
func (s *Service) View(ctx context.Context, sess session.Session) (*View, error) {
	remote, err := s.api.GetCart(ctx, sess.Token, sess.UserID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return s.render(ctx, sess, Empty(sess.UserID)), nil
		}
		if pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
			if mirrored, mErr := s.mirror.Load(ctx, sess.UserID); mErr == nil && mirrored != nil {
				s.logg.Warn(ctx, "cart service unreachable, serving mirrored cart")
				Recompute(mirrored)
				return &View{Cart: mirrored, FromMirror: true}, nil
			}
		}
		return nil, err
	}

	Recompute(remote)
	return s.render(ctx, sess, remote), nil
}

// Add puts a product into the cart. The product's current catalog price is
// captured at add time; the remote side merges repeated adds of the same
// product into one line.
func (s *Service) Add(ctx context.Context, sess session.Session, productID int64, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	payload := shop.AddCartItemRequest{
		UserID:      sess.UserID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price.InexactFloat64(),
	}
	if err := s.api.AddItem(ctx, sess.Token, payload); err != nil {
		return nil, err
	}

	remote, err := s.api.GetCart(ctx, sess.Token, sess.UserID)
	if err != nil {
		// The add itself landed. If the refetch cannot reach the remote
		// side, fold the line into the mirror so the session still shows
		// a usable cart.
		if pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
			line := shop.CartItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    quantity,
			}
			if merged, mErr := s.mirror.MergeItem(ctx, sess.UserID, line); mErr == nil && merged != nil {
				s.logg.Warn(ctx, "cart refetch failed after add, serving merged mirror")
				return &View{Cart: merged, FromMirror: true}, nil
			}
		}
		return nil, err
	}

	Recompute(remote)
	return s.render(ctx, sess, remote), nil
}

// SetQuantity changes one cart item's quantity. Concurrent mutations on the
// same item are rejected with a conflict while the first is in flight.
func (s *Service) SetQuantity(ctx context.Context, sess session.Session, cartItemID int64, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	remote, err := s.currentCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	index := findItem(remote, cartItemID)
	if index < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound,
			fmt.Sprintf("cart item %d not found", cartItemID))
	}

	release, err := s.guard.Acquire(ctx, cartItemID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.api.UpdateQuantity(ctx, sess.Token, cartItemID, quantity); err != nil {
		return nil, err
	}

	applyQuantity(remote, index, quantity)
	return s.render(ctx, sess, remote), nil
}

// Remove deletes one cart item. Removing an item that is already gone is a
// no-op: the cart is returned unchanged.
func (s *Service) Remove(ctx context.Context, sess session.Session, cartItemID int64) (*View, error) {
	remote, err := s.currentCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	index := findItem(remote, cartItemID)
	if index < 0 {
		return s.render(ctx, sess, remote), nil
	}

	release, err := s.guard.Acquire(ctx, cartItemID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.api.RemoveItem(ctx, sess.Token, cartItemID); err != nil {
		// Someone else already removed it remotely. Treat as done.
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return nil, err
		}
	}

	applyRemove(remote, index)
	return s.render(ctx, sess, remote), nil
}

// Clear empties the cart remotely and locally. Clearing an already empty cart
// still succeeds with the empty state.
func (s *Service) Clear(ctx context.Context, sess session.Session) (*View, error) {
	if err := s.api.ClearCart(ctx, sess.Token, sess.UserID); err != nil {
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return nil, err
		}
	}
	return s.render(ctx, sess, Empty(sess.UserID)), nil
}

// currentCart loads the remote cart for a mutation. A missing cart maps to
// the empty state so item lookups report NOT_FOUND rather than a remote 404.
func (s *Service) currentCart(ctx context.Context, sess session.Session) (*shop.Cart, error) {
	remote, err := s.api.GetCart(ctx, sess.Token, sess.UserID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return Empty(sess.UserID), nil
		}
		return nil, err
	}
	Recompute(remote)
	return remote, nil
}

// render finalizes a view: syncs the mirror and stitches in catalog images.
// Both steps are best effort and never fail the request.
func (s *Service) render(ctx context.Context, sess session.Session, c *shop.Cart) *View {
	if len(c.Items) == 0 {
		if err := s.mirror.Clear(ctx, sess.UserID); err != nil {
			s.logg.Warn(ctx, "failed to clear cart mirror")
		}
	} else if err := s.mirror.Save(ctx, c); err != nil {
		s.logg.Warn(ctx, "failed to save cart mirror")
	}

	view := &View{Cart: c}
	if len(c.Items) > 0 {
		if products, err := s.api.ListProducts(ctx); err == nil {
			view.Images = EnrichImages(c, products)
		}
	}
	return view
}
