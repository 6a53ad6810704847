package cart

import (
	"context"
	"strconv"
	"time"

	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
)

type lockStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	ItemGuardKey(cartItemID string) string
}

// Guard serializes mutations per cart item: while one item's remote call is in
// flight, a second mutation on the same item is rejected. Different items are
// independent. The TTL bounds how long a crashed holder can block an item.
type Guard struct {
	store lockStore
	ttl   time.Duration
}

// NewGuard builds an item guard on the given store.
func NewGuard(store lockStore, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Guard{store: store, ttl: ttl}
}

// Acquire locks one cart item and returns its release func. A held lock yields
// a CONFLICT error so the caller can tell the user an update is in progress.
func (g *Guard) Acquire(ctx context.Context, cartItemID int64) (func(), error) {
	if g == nil || g.store == nil {
		return func() {}, nil
	}
	key := g.store.ItemGuardKey(strconv.FormatInt(cartItemID, 10))
	ok, err := g.store.SetNX(ctx, key, "1", g.ttl)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire item guard")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "item update already in progress")
	}
	release := func() {
		_ = g.store.Del(context.WithoutCancel(ctx), key)
	}
	return release, nil
}
