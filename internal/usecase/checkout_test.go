package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type CheckoutTestSuite struct {
	suite.Suite
	db       *gorm.DB
	checkout *usecase.Checkout
	cart     *usecase.Cart
	user     *model.User
	address  *model.Address
	payment  *model.PaymentMethod
}

func (s *CheckoutTestSuite) SetupTest() {
	store, db := newTestStore(s.T())
	s.db = db
	s.checkout = usecase.NewCheckout(store, nil)
	s.cart = usecase.NewCart(store)
	s.user = seedUser(s.T(), db, "buyer@example.com")
	s.address = seedAddress(s.T(), db, s.user.ID)
	s.payment = seedPaymentMethod(s.T(), db)
}

func (s *CheckoutTestSuite) stockOf(productID string) int {
	var p model.Product
	require.NoError(s.T(), s.db.First(&p, "id = ?", productID).Error)
	return p.Stock
}

func (s *CheckoutTestSuite) TestCreateOrder() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Headphones", "10.00", 5)

	order, err := s.checkout.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:          s.user.ID,
		AddressID:       s.address.ID,
		PaymentMethodID: s.payment.ID,
		Items:           []usecase.OrderLine{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), domain.StatusPending, order.Status)
	require.True(s.T(), order.TotalAmount.Equal(decimal.RequireFromString("20.00")),
		"got total %s", order.TotalAmount)
	require.Len(s.T(), order.Items, 1)
	require.True(s.T(), order.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	require.Equal(s.T(), 3, s.stockOf(product.ID))
}

func (s *CheckoutTestSuite) TestUnitPriceIsSnapshotted() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Speaker", "50.00", 5)

	order, err := s.checkout.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:          s.user.ID,
		AddressID:       s.address.ID,
		PaymentMethodID: s.payment.ID,
		Items:           []usecase.OrderLine{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.db.Model(&model.Product{}).
		Where("id = ?", product.ID).Update("price", "75.00").Error)

	var item model.OrderItem
	require.NoError(s.T(), s.db.First(&item, "order_id = ?", order.ID).Error)
	require.True(s.T(), item.UnitPrice.Equal(decimal.RequireFromString("50.00")))
}

func (s *CheckoutTestSuite) TestInsufficientStockRollsBackEverything() {
	ctx := context.Background()
	plenty := seedProduct(s.T(), s.db, "Pens", "2.00", 100)
	scarce := seedProduct(s.T(), s.db, "Notebooks", "8.00", 1)

	_, err := s.checkout.CreateOrder(ctx, usecase.CreateOrderInput{
		UserID:          s.user.ID,
		AddressID:       s.address.ID,
		PaymentMethodID: s.payment.ID,
		Items: []usecase.OrderLine{
			{ProductID: plenty.ID, Quantity: 10},
			{ProductID: scarce.ID, Quantity: 3},
		},
	})
	require.ErrorIs(s.T(), err, domain.ErrInsufficientStock)

	// the first line's deduction must have been rolled back
	require.Equal(s.T(), 100, s.stockOf(plenty.ID))
	require.Equal(s.T(), 1, s.stockOf(scarce.ID))

	var count int64
	require.NoError(s.T(), s.db.Model(&model.Order{}).Count(&count).Error)
	require.Zero(s.T(), count)
}

func (s *CheckoutTestSuite) TestCreateOrderValidation() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Eraser", "1.00", 10)

	base := usecase.CreateOrderInput{
		UserID:          s.user.ID,
		AddressID:       s.address.ID,
		PaymentMethodID: s.payment.ID,
	}

	_, err := s.checkout.CreateOrder(ctx, base)
	require.ErrorIs(s.T(), err, domain.ErrValidation)

	in := base
	in.Items = []usecase.OrderLine{{ProductID: product.ID, Quantity: 0}}
	_, err = s.checkout.CreateOrder(ctx, in)
	require.ErrorIs(s.T(), err, domain.ErrValidation)

	in = base
	in.AddressID = "missing"
	in.Items = []usecase.OrderLine{{ProductID: product.ID, Quantity: 1}}
	_, err = s.checkout.CreateOrder(ctx, in)
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
	require.Equal(s.T(), 10, s.stockOf(product.ID))

	in = base
	in.PaymentMethodID = "missing"
	in.Items = []usecase.OrderLine{{ProductID: product.ID, Quantity: 1}}
	_, err = s.checkout.CreateOrder(ctx, in)
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CheckoutTestSuite) TestCheckoutCartDrainsCart() {
	ctx := context.Background()
	mouse := seedProduct(s.T(), s.db, "Mouse", "25.00", 10)
	keyboard := seedProduct(s.T(), s.db, "Keyboard", "75.00", 10)

	_, err := s.cart.AddItem(ctx, s.user.ID, mouse.ID, 2)
	require.NoError(s.T(), err)
	_, err = s.cart.AddItem(ctx, s.user.ID, keyboard.ID, 1)
	require.NoError(s.T(), err)

	order, err := s.checkout.CheckoutCart(ctx, s.user.ID, s.address.ID, s.payment.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), order.Items, 2)
	require.True(s.T(), order.TotalAmount.Equal(decimal.RequireFromString("125.00")),
		"got total %s", order.TotalAmount)

	view, err := s.cart.Get(ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Zero(s.T(), view.TotalItems)
	require.Equal(s.T(), 8, s.stockOf(mouse.ID))
	require.Equal(s.T(), 9, s.stockOf(keyboard.ID))
}

func (s *CheckoutTestSuite) TestCheckoutEmptyCart() {
	_, err := s.checkout.CheckoutCart(context.Background(), s.user.ID, s.address.ID, s.payment.ID)
	require.ErrorIs(s.T(), err, domain.ErrValidation)
}

func (s *CheckoutTestSuite) TestCheckoutCartKeepsCartOnFailure() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Limited", "40.00", 3)

	_, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 3)
	require.NoError(s.T(), err)

	// stock drops between carting and checkout
	require.NoError(s.T(), s.db.Model(&model.Product{}).
		Where("id = ?", product.ID).Update("stock", 1).Error)

	_, err = s.checkout.CheckoutCart(ctx, s.user.ID, s.address.ID, s.payment.ID)
	require.ErrorIs(s.T(), err, domain.ErrInsufficientStock)

	view, err := s.cart.Get(ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, view.TotalItems)
}

func (s *CheckoutTestSuite) createOrder(qty int) *model.Order {
	product := seedProduct(s.T(), s.db, "Generic", "10.00", 50)
	order, err := s.checkout.CreateOrder(context.Background(), usecase.CreateOrderInput{
		UserID:          s.user.ID,
		AddressID:       s.address.ID,
		PaymentMethodID: s.payment.ID,
		Items:           []usecase.OrderLine{{ProductID: product.ID, Quantity: qty}},
	})
	require.NoError(s.T(), err)
	return order
}

func (s *CheckoutTestSuite) TestUpdateOrderStatus() {
	ctx := context.Background()
	order := s.createOrder(1)

	status := "processing"
	updated, err := s.checkout.UpdateOrder(ctx, order.ID, usecase.OrderPatch{Status: &status})
	require.NoError(s.T(), err)
	require.Equal(s.T(), domain.StatusProcessing, updated.Status)

	bad := "pending"
	_, err = s.checkout.UpdateOrder(ctx, order.ID, usecase.OrderPatch{Status: &bad})
	require.ErrorIs(s.T(), err, domain.ErrValidation)

	unknown := "paid"
	_, err = s.checkout.UpdateOrder(ctx, order.ID, usecase.OrderPatch{Status: &unknown})
	require.ErrorIs(s.T(), err, domain.ErrValidation)
}

func (s *CheckoutTestSuite) TestUpdateOrderReferences() {
	ctx := context.Background()
	order := s.createOrder(1)

	other := seedAddress(s.T(), s.db, s.user.ID)
	updated, err := s.checkout.UpdateOrder(ctx, order.ID, usecase.OrderPatch{AddressID: &other.ID})
	require.NoError(s.T(), err)
	require.Equal(s.T(), other.ID, updated.AddressID)

	missing := "missing"
	_, err = s.checkout.UpdateOrder(ctx, order.ID, usecase.OrderPatch{PaymentMethodID: &missing})
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CheckoutTestSuite) TestDeleteOrder() {
	ctx := context.Background()
	order := s.createOrder(1)

	require.NoError(s.T(), s.checkout.DeleteOrder(ctx, order.ID))
	err := s.db.First(&model.Order{}, "id = ?", order.ID).Error
	require.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *CheckoutTestSuite) TestDeleteOrderNotPending() {
	ctx := context.Background()
	order := s.createOrder(1)

	status := "shipped"
	_, err := s.checkout.UpdateOrder(ctx, order.ID, usecase.OrderPatch{Status: &status})
	require.NoError(s.T(), err)

	err = s.checkout.DeleteOrder(ctx, order.ID)
	require.ErrorIs(s.T(), err, domain.ErrConflict)
}

func TestCheckoutTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}
