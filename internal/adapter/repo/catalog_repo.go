package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

// Catalog side tables: brands, tags, promotions, images, addresses and
// payment methods are plain CRUD with filtered pagination.

type BrandRepo struct{ db *gorm.DB }

func NewBrandRepo(db *gorm.DB) *BrandRepo { return &BrandRepo{db: db} }

func (r *BrandRepo) Get(ctx context.Context, id string) (*model.Brand, error) {
	var b model.Brand
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("brand with id %s", id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) Create(ctx context.Context, b *model.Brand) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("brand with name %q already exists", b.Name)
		}
		return err
	}
	return nil
}

func (r *BrandRepo) Save(ctx context.Context, b *model.Brand) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("brand with name %q already exists", b.Name)
		}
		return err
	}
	return nil
}

func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("brand_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflictf("brand still has %d products", n)
	}
	return r.db.WithContext(ctx).Delete(&model.Brand{}, "id = ?", id).Error
}

func (r *BrandRepo) List(ctx context.Context, name string, skip, limit int) ([]model.Brand, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Brand{})
	if name != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+name+"%")
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var brands []model.Brand
	err := query.Offset(skip).Limit(limit).Find(&brands).Error
	return brands, total, err
}

type TagRepo struct{ db *gorm.DB }

func NewTagRepo(db *gorm.DB) *TagRepo { return &TagRepo{db: db} }

func (r *TagRepo) Get(ctx context.Context, id string) (*model.Tag, error) {
	var t model.Tag
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("tag with id %s", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *TagRepo) Create(ctx context.Context, t *model.Tag) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("tag with name %q already exists", t.Name)
		}
		return err
	}
	return nil
}

func (r *TagRepo) Save(ctx context.Context, t *model.Tag) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("tag with name %q already exists", t.Name)
		}
		return err
	}
	return nil
}

func (r *TagRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Tag{}, "id = ?", id).Error
}

func (r *TagRepo) List(ctx context.Context, name string, skip, limit int) ([]model.Tag, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Tag{})
	if name != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+name+"%")
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tags []model.Tag
	err := query.Offset(skip).Limit(limit).Find(&tags).Error
	return tags, total, err
}

type PromotionRepo struct{ db *gorm.DB }

func NewPromotionRepo(db *gorm.DB) *PromotionRepo { return &PromotionRepo{db: db} }

func (r *PromotionRepo) Get(ctx context.Context, id string) (*model.Promotion, error) {
	var p model.Promotion
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("promotion with id %s", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepo) Create(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromotionRepo) Save(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PromotionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Promotion{}, "id = ?", id).Error
}

type PromotionFilter struct {
	Name   string
	Active *bool
	Now    time.Time
	Skip   int
	Limit  int
}

func (r *PromotionRepo) List(ctx context.Context, f PromotionFilter) ([]model.Promotion, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Promotion{})
	if f.Name != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+f.Name+"%")
	}
	if f.Active != nil {
		if *f.Active {
			query = query.Where("start_date <= ? AND end_date >= ?", f.Now, f.Now)
		} else {
			query = query.Where("start_date > ? OR end_date < ?", f.Now, f.Now)
		}
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var promotions []model.Promotion
	err := query.Offset(f.Skip).Limit(f.Limit).Find(&promotions).Error
	return promotions, total, err
}

type ImageRepo struct{ db *gorm.DB }

func NewImageRepo(db *gorm.DB) *ImageRepo { return &ImageRepo{db: db} }

func (r *ImageRepo) Get(ctx context.Context, id string) (*model.Image, error) {
	var img model.Image
	if err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("image with id %s", id)
		}
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepo) Create(ctx context.Context, img *model.Image) error {
	if err := r.db.WithContext(ctx).Create(img).Error; err != nil {
		if isFKViolation(err) {
			return domain.NotFoundf("product with id %s", img.ProductID)
		}
		return err
	}
	return nil
}

func (r *ImageRepo) Save(ctx context.Context, img *model.Image) error {
	return r.db.WithContext(ctx).Save(img).Error
}

func (r *ImageRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Image{}, "id = ?", id).Error
}

func (r *ImageRepo) List(ctx context.Context, productID string, skip, limit int) ([]model.Image, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Image{})
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var images []model.Image
	err := query.Offset(skip).Limit(limit).Find(&images).Error
	return images, total, err
}

type AddressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) Get(ctx context.Context, id string) (*model.Address, error) {
	var a model.Address
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("address with id %s", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) Create(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AddressRepo) Save(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AddressRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Address{}, "id = ?", id).Error
}

func (r *AddressRepo) List(ctx context.Context, userID string, skip, limit int) ([]model.Address, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Address{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var addresses []model.Address
	err := query.Offset(skip).Limit(limit).Find(&addresses).Error
	return addresses, total, err
}

type PaymentMethodRepo struct{ db *gorm.DB }

func NewPaymentMethodRepo(db *gorm.DB) *PaymentMethodRepo { return &PaymentMethodRepo{db: db} }

func (r *PaymentMethodRepo) Get(ctx context.Context, id string) (*model.PaymentMethod, error) {
	var pm model.PaymentMethod
	if err := r.db.WithContext(ctx).First(&pm, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("payment method with id %s", id)
		}
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepo) Create(ctx context.Context, pm *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(pm).Error
}

func (r *PaymentMethodRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.PaymentMethod{}, "id = ?", id).Error
}

func (r *PaymentMethodRepo) List(ctx context.Context, skip, limit int) ([]model.PaymentMethod, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.PaymentMethod{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var methods []model.PaymentMethod
	err := query.Offset(skip).Limit(limit).Find(&methods).Error
	return methods, total, err
}
