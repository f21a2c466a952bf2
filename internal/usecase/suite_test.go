package usecase_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
)

// newTestStore opens a fresh in-memory database per test. The DSN is
// keyed by test name so parallel suites never share state.
func newTestStore(t *testing.T) (*repo.Store, *gorm.DB) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))
	return repo.NewStore(db), db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, parentID *string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name, Description: name + " products", ParentID: parentID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string, stock int) *model.Product {
	t.Helper()
	category := seedCategory(t, db, "category for "+name, nil)
	brand := &model.Brand{Name: "brand for " + name, Description: "test brand"}
	require.NoError(t, db.Create(brand).Error)

	p := &model.Product{
		Name:        name,
		Summary:     name + " summary",
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		CategoryID:  category.ID,
		BrandID:     brand.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedAddress(t *testing.T, db *gorm.DB, userID string) *model.Address {
	t.Helper()
	a := &model.Address{
		UserID:     userID,
		Province:   "Buenos Aires",
		City:       "La Plata",
		Street:     "Calle 50",
		Number:     123,
		PostalCode: "1900",
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedPaymentMethod(t *testing.T, db *gorm.DB) *model.PaymentMethod {
	t.Helper()
	pm := &model.PaymentMethod{Type: "transfer"}
	require.NoError(t, db.Create(pm).Error)
	return pm
}
