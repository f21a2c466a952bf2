package repo

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	"github.com/augustolallana/api-omega/internal/usecase"
)

// Store implements usecase.Store over a gorm connection. Tx hands the
// usecase a Store bound to the transaction so every read and write in
// the closure shares one atomic unit.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the schema. Idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Category{},
		&model.Brand{},
		&model.Tag{},
		&model.Promotion{},
		&model.Image{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.PaymentMethod{},
		&model.Order{},
		&model.OrderItem{},
	)
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Tx(ctx context.Context, fn func(usecase.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Categories() usecase.CategoryStore { return &CategoryRepo{db: s.db} }
func (s *Store) Products() usecase.ProductStore    { return &ProductRepo{db: s.db} }
func (s *Store) Carts() usecase.CartStore          { return &CartRepo{db: s.db} }
func (s *Store) Orders() usecase.OrderStore        { return &OrderRepo{db: s.db} }
func (s *Store) Users() usecase.UserStore          { return &UserRepo{db: s.db} }

var _ usecase.Store = (*Store)(nil)
