package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

// Checkout turns a validated set of lines into one order: every
// referenced row must resolve, every product must have the stock, and
// the order row, its items and the stock decrements commit as a single
// transaction. Item prices are snapshotted at order time.
type Checkout struct {
	store Store
	idem  IdempotencyStore
}

func NewCheckout(store Store, idem IdempotencyStore) *Checkout {
	return &Checkout{store: store, idem: idem}
}

type OrderLine struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	UserID          string
	AddressID       string
	PaymentMethodID string
	IdempotencyKey  string
	Items           []OrderLine
}

func (uc *Checkout) CreateOrder(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.Validationf("order must contain at least one item")
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, domain.Validationf("quantity must be positive for product %s", line.ProductID)
		}
	}

	if uc.idem != nil && in.IdempotencyKey != "" {
		if id, ok, _ := uc.idem.Recall(ctx, in.UserID, in.IdempotencyKey); ok {
			return uc.store.Orders().Get(ctx, id)
		}
		ok, err := uc.idem.TryLock(ctx, in.UserID, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.Conflictf("duplicate checkout request")
		}
	}

	var order *model.Order
	err := uc.store.Tx(ctx, func(s Store) error {
		o, err := uc.createOrderTx(ctx, s, in)
		if err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.idem != nil && in.IdempotencyKey != "" {
		_ = uc.idem.Remember(ctx, in.UserID, in.IdempotencyKey, order.ID)
	}
	return order, nil
}

// CheckoutCart creates an order from the user's cart and drains the
// cart in the same transaction.
func (uc *Checkout) CheckoutCart(ctx context.Context, userID, addressID, paymentMethodID string) (*model.Order, error) {
	var order *model.Order
	err := uc.store.Tx(ctx, func(s Store) error {
		cart, err := s.Carts().GetByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return domain.Validationf("cart is empty")
		}
		in := CreateOrderInput{
			UserID:          userID,
			AddressID:       addressID,
			PaymentMethodID: paymentMethodID,
		}
		for _, item := range cart.Items {
			in.Items = append(in.Items, OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		o, err := uc.createOrderTx(ctx, s, in)
		if err != nil {
			return err
		}
		if err := s.Carts().Clear(ctx, cart.ID); err != nil {
			return err
		}
		order = o
		return nil
	})
	return order, err
}

func (uc *Checkout) createOrderTx(ctx context.Context, s Store, in CreateOrderInput) (*model.Order, error) {
	if _, err := s.Users().Get(ctx, in.UserID); err != nil {
		return nil, err
	}
	if _, err := s.Orders().GetAddress(ctx, in.AddressID); err != nil {
		return nil, err
	}
	if _, err := s.Orders().GetPaymentMethod(ctx, in.PaymentMethodID); err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		product, err := s.Products().Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > product.Stock {
			return nil, fmt.Errorf("product %s: requested %d with %d in stock: %w",
				line.ProductID, line.Quantity, product.Stock, domain.ErrInsufficientStock)
		}
		if err := s.Products().DeductStock(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &model.Order{
		UserID:          in.UserID,
		AddressID:       in.AddressID,
		PaymentMethodID: in.PaymentMethodID,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		Items:           items,
	}
	if err := s.Orders().Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

type OrderPatch struct {
	AddressID       *string
	PaymentMethodID *string
	Status          *string
}

// UpdateOrder applies only the supplied fields. Status changes must
// follow the transition graph; new address or payment references must
// resolve.
func (uc *Checkout) UpdateOrder(ctx context.Context, orderID string, patch OrderPatch) (*model.Order, error) {
	var updated *model.Order
	err := uc.store.Tx(ctx, func(s Store) error {
		order, err := s.Orders().Get(ctx, orderID)
		if err != nil {
			return err
		}
		if patch.AddressID != nil && *patch.AddressID != order.AddressID {
			if _, err := s.Orders().GetAddress(ctx, *patch.AddressID); err != nil {
				return err
			}
			order.AddressID = *patch.AddressID
		}
		if patch.PaymentMethodID != nil && *patch.PaymentMethodID != order.PaymentMethodID {
			if _, err := s.Orders().GetPaymentMethod(ctx, *patch.PaymentMethodID); err != nil {
				return err
			}
			order.PaymentMethodID = *patch.PaymentMethodID
		}
		if patch.Status != nil {
			next := domain.Status(*patch.Status)
			if !next.Valid() {
				return domain.Validationf("unknown order status %q", *patch.Status)
			}
			if next != order.Status && !order.Status.CanTransition(next) {
				return domain.Validationf("order status cannot change from %s to %s", order.Status, next)
			}
			order.Status = next
		}
		order.UpdatedAt = time.Now().UTC()
		if err := s.Orders().Save(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	return updated, err
}

// DeleteOrder removes an order; only pending orders may be deleted.
func (uc *Checkout) DeleteOrder(ctx context.Context, orderID string) error {
	return uc.store.Tx(ctx, func(s Store) error {
		order, err := s.Orders().Get(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != domain.StatusPending {
			return domain.Conflictf("only pending orders can be deleted, status is %s", order.Status)
		}
		return s.Orders().Delete(ctx, order.ID)
	})
}
