package cart

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/redis"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

type kvStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartMirrorKey(userID string) string
}

// Mirror is the best-effort, session-scoped copy of a user's cart. The remote
// API stays the source of truth: the mirror is refreshed on every successful
// view, served only when the remote side is unreachable, and dropped as soon
// as the remote cart becomes empty. It is never merged back upstream.
type Mirror struct {
	store kvStore
	ttl   time.Duration
}

// NewMirror builds a mirror on the given store with a bounded lifetime.
func NewMirror(store kvStore, ttl time.Duration) *Mirror {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Mirror{store: store, ttl: ttl}
}

// Save overwrites the mirror with the latest cart view.
func (m *Mirror) Save(ctx context.Context, c *shop.Cart) error {
	if m == nil || m.store == nil || c == nil {
		return nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal cart mirror")
	}
	return m.store.Set(ctx, m.key(c.UserID), raw, m.ttl)
}

// Load returns the mirrored cart, or nil when no mirror exists.
func (m *Mirror) Load(ctx context.Context, userID int64) (*shop.Cart, error) {
	if m == nil || m.store == nil {
		return nil, nil
	}
	raw, err := m.store.Get(ctx, m.key(userID))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var c shop.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unmarshal cart mirror")
	}
	return &c, nil
}

// Clear drops the mirror entry.
func (m *Mirror) Clear(ctx context.Context, userID int64) error {
	if m == nil || m.store == nil {
		return nil
	}
	return m.store.Del(ctx, m.key(userID))
}

// MergeItem folds a just-added line into the mirror, summing quantities for an
// existing product line. Used when the post-add refetch cannot reach the
// remote API, so the session keeps a usable cart.
func (m *Mirror) MergeItem(ctx context.Context, userID int64, line shop.CartItem) (*shop.Cart, error) {
	if m == nil || m.store == nil {
		return nil, nil
	}
	current, err := m.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = Empty(userID)
	}
	current.Items = mergeLine(current.Items, line)
	Recompute(current)
	if err := m.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (m *Mirror) key(userID int64) string {
	return m.store.CartMirrorKey(strconv.FormatInt(userID, 10))
}
