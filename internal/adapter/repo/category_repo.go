package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Get(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("category with id %s", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("category with name %q already exists", c.Name)
		}
		if isFKViolation(err) {
			return domain.NotFoundf("parent category does not exist")
		}
		return err
	}
	return nil
}

func (r *CategoryRepo) Save(ctx context.Context, c *model.Category) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("category with name %q already exists", c.Name)
		}
		return err
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
}

func (r *CategoryRepo) CountChildren(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("parent_id = ?", id).Count(&n).Error
	return n, err
}

func (r *CategoryRepo) CountProducts(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", id).Count(&n).Error
	return n, err
}

type CategoryFilter struct {
	Name     string
	ParentID string
	Skip     int
	Limit    int
}

func (r *CategoryRepo) List(ctx context.Context, f CategoryFilter) ([]model.Category, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Category{})
	if f.Name != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+f.Name+"%")
	}
	if f.ParentID != "" {
		query = query.Where("parent_id = ?", f.ParentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := query.Offset(f.Skip).Limit(f.Limit).Find(&categories).Error
	return categories, total, err
}

var _ usecase.CategoryStore = (*CategoryRepo)(nil)
