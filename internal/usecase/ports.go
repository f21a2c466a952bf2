package usecase

import (
	"context"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
)

// Store is the unit-of-work boundary. Tx runs fn against a
// transaction-scoped Store; everything fn writes commits or rolls back
// as one atomic set. Lookups return errors wrapping domain.ErrNotFound
// when the id does not resolve, except where noted.
type Store interface {
	Tx(ctx context.Context, fn func(Store) error) error

	Categories() CategoryStore
	Products() ProductStore
	Carts() CartStore
	Orders() OrderStore
	Users() UserStore
}

type CategoryStore interface {
	Get(ctx context.Context, id string) (*model.Category, error)
	// GetByName returns (nil, nil) when no category has that name.
	GetByName(ctx context.Context, name string) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Save(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int64, error)
	CountProducts(ctx context.Context, id string) (int64, error)
}

type ProductStore interface {
	Get(ctx context.Context, id string) (*model.Product, error)
	// DeductStock decrements stock by qty, failing with
	// domain.ErrInsufficientStock when fewer than qty units remain.
	DeductStock(ctx context.Context, id string, qty int) error
}

type CartStore interface {
	// GetOrCreate returns the user's cart, creating an empty one on first use.
	GetOrCreate(ctx context.Context, userID string) (*model.Cart, error)
	// GetByUser preloads items and their products.
	GetByUser(ctx context.Context, userID string) (*model.Cart, error)
	GetItem(ctx context.Context, itemID string) (*model.CartItem, error)
	// FindItem returns (nil, nil) when the cart holds no row for the product.
	FindItem(ctx context.Context, cartID, productID string) (*model.CartItem, error)
	SaveItem(ctx context.Context, item *model.CartItem) error
	DeleteItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context, cartID string) error
}

type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	Get(ctx context.Context, id string) (*model.Order, error)
	Save(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id string) error
	GetAddress(ctx context.Context, id string) (*model.Address, error)
	GetPaymentMethod(ctx context.Context, id string) (*model.PaymentMethod, error)
}

type UserStore interface {
	Get(ctx context.Context, id string) (*model.User, error)
}

// IdempotencyStore remembers checkout submissions so a retried request
// returns the order created the first time instead of a duplicate.
type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}
