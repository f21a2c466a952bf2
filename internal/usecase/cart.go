package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

// Cart reconciles the per-user cart: one row per product (quantities
// merge), quantities never exceed live stock, totals recomputed from
// current prices on every read.
type Cart struct {
	store Store
}

func NewCart(store Store) *Cart {
	return &Cart{store: store}
}

func (uc *Cart) AddItem(ctx context.Context, userID, productID string, qty int) (*model.CartItem, error) {
	if qty <= 0 {
		return nil, domain.Validationf("quantity must be positive, got %d", qty)
	}
	var out *model.CartItem
	err := uc.store.Tx(ctx, func(s Store) error {
		product, err := s.Products().Get(ctx, productID)
		if err != nil {
			return err
		}
		cart, err := s.Carts().GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		item, err := s.Carts().FindItem(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			item = &model.CartItem{CartID: cart.ID, ProductID: productID}
		}
		wanted := item.Quantity + qty
		if wanted > product.Stock {
			return fmt.Errorf("product %s: requested %d with %d in stock: %w",
				productID, wanted, product.Stock, domain.ErrInsufficientStock)
		}
		item.Quantity = wanted
		if err := s.Carts().SaveItem(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

// UpdateItem sets the quantity of a cart item. A quantity of zero or
// less removes the row; the returned item is nil in that case.
func (uc *Cart) UpdateItem(ctx context.Context, userID, itemID string, qty int) (*model.CartItem, error) {
	var out *model.CartItem
	err := uc.store.Tx(ctx, func(s Store) error {
		item, err := uc.ownedItem(ctx, s, userID, itemID)
		if err != nil {
			return err
		}
		if qty <= 0 {
			return s.Carts().DeleteItem(ctx, item.ID)
		}
		product, err := s.Products().Get(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if qty > product.Stock {
			return fmt.Errorf("product %s: requested %d with %d in stock: %w",
				item.ProductID, qty, product.Stock, domain.ErrInsufficientStock)
		}
		item.Quantity = qty
		if err := s.Carts().SaveItem(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

func (uc *Cart) RemoveItem(ctx context.Context, userID, itemID string) error {
	return uc.store.Tx(ctx, func(s Store) error {
		item, err := uc.ownedItem(ctx, s, userID, itemID)
		if err != nil {
			return err
		}
		return s.Carts().DeleteItem(ctx, item.ID)
	})
}

// ownedItem resolves the item and confirms it lives in the caller's
// cart; items in other carts read as not found.
func (uc *Cart) ownedItem(ctx context.Context, s Store, userID, itemID string) (*model.CartItem, error) {
	item, err := s.Carts().GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	cart, err := s.Carts().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, domain.NotFoundf("cart item with id %s", itemID)
	}
	return item, nil
}

type CartView struct {
	Cart       *model.Cart     `json:"cart"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Get returns the cart with totals computed from live product prices;
// nothing is cached on the cart row.
func (uc *Cart) Get(ctx context.Context, userID string) (*CartView, error) {
	cart, err := uc.store.Carts().GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Cart: cart, TotalPrice: decimal.Zero}
	for _, item := range cart.Items {
		view.TotalItems += item.Quantity
		if item.Product != nil {
			line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			view.TotalPrice = view.TotalPrice.Add(line)
		}
	}
	return view, nil
}
