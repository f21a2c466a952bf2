package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		if isFKViolation(err) {
			return domain.NotFoundf("referenced address, payment method or product does not exist")
		}
		return err
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	if err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("order with id %s", id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) Save(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(o).Error
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, "id = ?", id).Error
	})
}

func (r *OrderRepo) GetAddress(ctx context.Context, id string) (*model.Address, error) {
	var a model.Address
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("address with id %s", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *OrderRepo) GetPaymentMethod(ctx context.Context, id string) (*model.PaymentMethod, error) {
	var pm model.PaymentMethod
	if err := r.db.WithContext(ctx).First(&pm, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("payment method with id %s", id)
		}
		return nil, err
	}
	return &pm, nil
}

type OrderFilter struct {
	UserID string
	Status string
	Skip   int
	Limit  int
}

func (r *OrderRepo) List(ctx context.Context, f OrderFilter) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})
	if f.UserID != "" {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := query.Preload("Items").Offset(f.Skip).Limit(f.Limit).Find(&orders).Error
	return orders, total, err
}

var _ usecase.OrderStore = (*OrderRepo)(nil)
