package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cart = model.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepo) GetByUser(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		First(&cart, "user_id = ?", userID).Error
	if notFound(err) {
		// an untouched cart reads as empty
		return &model.Cart{UserID: userID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepo) GetItem(ctx context.Context, itemID string) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("cart item with id %s", itemID)
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) FindItem(ctx context.Context, cartID, productID string) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) SaveItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CartRepo) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, "id = ?", itemID).Error
}

func (r *CartRepo) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error
}

var _ usecase.CartStore = (*CartRepo)(nil)
