package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicated key")
	ErrOptimisticLock = errors.New("optimistic locking conflict")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.WithStack(ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.WithStack(ErrDuplicate)
	default:
		return errors.WithStack(err)
	}
}

func findByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return translate(db.WithContext(ctx).Create(row).Error)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.WithStack(ErrNotFound)
	}
	return nil
}

// updateVersioned applies fields only when the stored version still equals
// version, bumping it by one.
func updateVersioned[T any](ctx context.Context, db *gorm.DB, id, version uint, fields map[string]any) error {
	fields["version"] = gorm.Expr("version + 1")

	res := db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.WithStack(ErrOptimisticLock)
	}
	return nil
}
