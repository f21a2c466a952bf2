package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, domain.NotFoundf("user with id %s", id)
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns (nil, nil) when no user has that email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflictf("user with email %q already exists", u.Email)
		}
		return err
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context, email string, skip, limit int) ([]model.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})
	if email != "" {
		query = query.Where("lower(email) LIKE lower(?)", "%"+email+"%")
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []model.User
	err := query.Offset(skip).Limit(limit).Find(&users).Error
	return users, total, err
}

var _ usecase.UserStore = (*UserRepo)(nil)
