package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name, price string, stock int) *model.Product {
	t.Helper()
	category := &model.Category{Name: "category for " + name}
	require.NoError(t, db.Create(category).Error)
	brand := &model.Brand{Name: "brand for " + name, Description: "test"}
	require.NoError(t, db.Create(brand).Error)

	p := &model.Product{
		Name:        name,
		Summary:     "summary",
		Description: "description",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		CategoryID:  category.ID,
		BrandID:     brand.ID,
	}
	require.NoError(t, NewProductRepo(db).Create(context.Background(), p))
	return p
}

func TestProductRepo_DeductStock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := NewProductRepo(db)
	p := createProduct(t, db, "Webcam", "45.00", 5)

	require.NoError(t, r.DeductStock(ctx, p.ID, 3))
	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Stock)

	err = r.DeductStock(ctx, p.ID, 3)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// exact remainder is still allowed
	require.NoError(t, r.DeductStock(ctx, p.ID, 2))
	got, err = r.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Zero(t, got.Stock)

	err = r.DeductStock(ctx, "missing", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_CreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	p := createProduct(t, db, "Printer", "200.00", 2)

	dup := &model.Product{
		Name:        "Printer",
		Summary:     "summary",
		Description: "description",
		Price:       decimal.RequireFromString("150.00"),
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
	}
	err := NewProductRepo(db).Create(context.Background(), dup)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductRepo_List(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := NewProductRepo(db)
	cheap := createProduct(t, db, "Pencil", "1.50", 100)
	createProduct(t, db, "Pen", "3.00", 0)
	createProduct(t, db, "Marker", "5.00", 30)

	products, total, err := r.List(ctx, ProductFilter{Name: "pen", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total) // Pencil and Pen, case-insensitive substring
	require.Len(t, products, 2)

	min := decimal.RequireFromString("2.00")
	max := decimal.RequireFromString("4.00")
	products, total, err = r.List(ctx, ProductFilter{MinPrice: &min, MaxPrice: &max, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Pen", products[0].Name)

	inStock := true
	_, total, err = r.List(ctx, ProductFilter{InStock: &inStock, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	products, total, err = r.List(ctx, ProductFilter{CategoryID: cheap.CategoryID, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Pencil", products[0].Name)

	products, total, err = r.List(ctx, ProductFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, products, 1)
}

func TestProductRepo_CountReferences(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := NewProductRepo(db)
	p := createProduct(t, db, "Tablet", "300.00", 10)

	refs, err := r.CountReferences(ctx, p.ID)
	require.NoError(t, err)
	require.Zero(t, refs)

	user := &model.User{Email: "u@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	cart := &model.Cart{UserID: user.ID}
	require.NoError(t, db.Create(cart).Error)
	require.NoError(t, db.Create(&model.CartItem{CartID: cart.ID, ProductID: p.ID, Quantity: 1}).Error)

	refs, err = r.CountReferences(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, refs)
}

func TestProductRepo_GetByNameMiss(t *testing.T) {
	db := newTestDB(t)
	p, err := NewProductRepo(db).GetByName(context.Background(), "nothing here")
	require.NoError(t, err)
	require.Nil(t, p)
}
