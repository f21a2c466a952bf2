package repo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Get(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("product with id %s", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) GetDetailed(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Tags").Preload("Promotions").Preload("Images").
		First(&p, "id = ?", id).Error
	if err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("product with id %s", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "name = ?", name).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeductStock performs the read-check-update inside the caller's
// transaction; the conditional UPDATE keeps stock from going negative
// even under concurrent checkouts.
func (r *ProductRepo) DeductStock(ctx context.Context, id string, qty int) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var p model.Product
		if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
			if notFound(err) {
				return domain.NotFoundf("product with id %s", id)
			}
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("product with name %q already exists", p.Name)
		}
		if isFKViolation(err) {
			return domain.NotFoundf("referenced category or brand does not exist")
		}
		return err
	}
	return nil
}

func (r *ProductRepo) Save(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("product with name %q already exists", p.Name)
		}
		return err
	}
	return nil
}

// CountReferences reports how many cart and order rows still point at
// the product; deletion is blocked while any remain.
func (r *ProductRepo) CountReferences(ctx context.Context, id string) (int64, error) {
	var inCarts, inOrders int64
	if err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("product_id = ?", id).Count(&inCarts).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("product_id = ?", id).Count(&inOrders).Error; err != nil {
		return 0, err
	}
	return inCarts + inOrders, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

type ProductFilter struct {
	Name       string
	CategoryID string
	BrandID    string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	InStock    *bool
	Skip       int
	Limit      int
}

func (r *ProductRepo) List(ctx context.Context, f ProductFilter) ([]model.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if f.Name != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+f.Name+"%")
	}
	if f.CategoryID != "" {
		query = query.Where("category_id = ?", f.CategoryID)
	}
	if f.BrandID != "" {
		query = query.Where("brand_id = ?", f.BrandID)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", f.MaxPrice)
	}
	if f.InStock != nil {
		if *f.InStock {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock = 0")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.Offset(f.Skip).Limit(f.Limit).Find(&products).Error
	return products, total, err
}

var _ usecase.ProductStore = (*ProductRepo)(nil)
