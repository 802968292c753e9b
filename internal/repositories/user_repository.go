package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return create(ctx, r.db, user)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return findByID[model.User](ctx, r.db, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) exists(ctx context.Context, column, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return false, errors.WithStack(err)
	}
	return count > 0, nil
}

func (r *UserRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "name", name)
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// Search matches names case-insensitively, leaving out excludeID.
func (r *UserRepository) Search(ctx context.Context, query string, excludeID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? AND id <> ?", "%"+strings.ToLower(query)+"%", excludeID).
		Order("name asc").
		Find(&users).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return users, nil
}

// UpdateFields writes the given columns of the user row. Existence is
// checked first: MySQL counts a row whose values did not change as not
// affected.
func (r *UserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.User](ctx, r.db, id)
}
