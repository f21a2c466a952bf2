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

type CartTestSuite struct {
	suite.Suite
	db   *gorm.DB
	cart *usecase.Cart
	user *model.User
}

func (s *CartTestSuite) SetupTest() {
	store, db := newTestStore(s.T())
	s.db = db
	s.cart = usecase.NewCart(store)
	s.user = seedUser(s.T(), db, "shopper@example.com")
}

func (s *CartTestSuite) TestAddItemMergesQuantities() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Mouse", "25.50", 10)

	item, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, item.Quantity)

	item, err = s.cart.AddItem(ctx, s.user.ID, product.ID, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, item.Quantity)

	// merged into a single row, never duplicated
	var count int64
	require.NoError(s.T(), s.db.Model(&model.CartItem{}).
		Where("product_id = ?", product.ID).Count(&count).Error)
	require.EqualValues(s.T(), 1, count)
}

func (s *CartTestSuite) TestAddItemRespectsStock() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Monitor", "300.00", 10)

	_, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 7)
	require.NoError(s.T(), err)

	// 7 in cart + 5 requested > 10 in stock
	_, err = s.cart.AddItem(ctx, s.user.ID, product.ID, 5)
	require.ErrorIs(s.T(), err, domain.ErrInsufficientStock)
}

func (s *CartTestSuite) TestAddItemValidation() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Cable", "5.00", 10)

	_, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 0)
	require.ErrorIs(s.T(), err, domain.ErrValidation)
	_, err = s.cart.AddItem(ctx, s.user.ID, product.ID, -2)
	require.ErrorIs(s.T(), err, domain.ErrValidation)
	_, err = s.cart.AddItem(ctx, s.user.ID, "missing", 1)
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CartTestSuite) TestUpdateItem() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Desk", "120.00", 4)

	item, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 2)
	require.NoError(s.T(), err)

	updated, err := s.cart.UpdateItem(ctx, s.user.ID, item.ID, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, updated.Quantity)

	_, err = s.cart.UpdateItem(ctx, s.user.ID, item.ID, 5)
	require.ErrorIs(s.T(), err, domain.ErrInsufficientStock)
}

func (s *CartTestSuite) TestUpdateItemToZeroRemoves() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Lamp", "35.00", 8)

	item, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 2)
	require.NoError(s.T(), err)

	removed, err := s.cart.UpdateItem(ctx, s.user.ID, item.ID, 0)
	require.NoError(s.T(), err)
	require.Nil(s.T(), removed)

	err = s.db.First(&model.CartItem{}, "id = ?", item.ID).Error
	require.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *CartTestSuite) TestItemsAreScopedToOwner() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Chair", "80.00", 8)
	other := seedUser(s.T(), s.db, "other@example.com")

	item, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 1)
	require.NoError(s.T(), err)

	// another user's handle on the item reads as not found
	_, err = s.cart.UpdateItem(ctx, other.ID, item.ID, 2)
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
	err = s.cart.RemoveItem(ctx, other.ID, item.ID)
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CartTestSuite) TestRemoveItem() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Rug", "60.00", 3)

	item, err := s.cart.AddItem(ctx, s.user.ID, product.ID, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.cart.RemoveItem(ctx, s.user.ID, item.ID))

	err = s.cart.RemoveItem(ctx, s.user.ID, item.ID)
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CartTestSuite) TestGetComputesTotalsFromLivePrices() {
	ctx := context.Background()
	mouse := seedProduct(s.T(), s.db, "Mouse", "25.50", 10)
	keyboard := seedProduct(s.T(), s.db, "Keyboard", "99.90", 10)

	_, err := s.cart.AddItem(ctx, s.user.ID, mouse.ID, 2)
	require.NoError(s.T(), err)
	_, err = s.cart.AddItem(ctx, s.user.ID, keyboard.ID, 1)
	require.NoError(s.T(), err)

	view, err := s.cart.Get(ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, view.TotalItems)
	require.True(s.T(), view.TotalPrice.Equal(decimal.RequireFromString("150.90")),
		"got total %s", view.TotalPrice)

	// a price change shows up on the next read
	require.NoError(s.T(), s.db.Model(&model.Product{}).
		Where("id = ?", mouse.ID).Update("price", "30.00").Error)

	view, err = s.cart.Get(ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.True(s.T(), view.TotalPrice.Equal(decimal.RequireFromString("159.90")),
		"got total %s", view.TotalPrice)
}

func (s *CartTestSuite) TestGetEmptyCart() {
	view, err := s.cart.Get(context.Background(), s.user.ID)
	require.NoError(s.T(), err)
	require.Zero(s.T(), view.TotalItems)
	require.True(s.T(), view.TotalPrice.IsZero())
}

func TestCartTestSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}
