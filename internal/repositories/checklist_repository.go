package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) Create(ctx context.Context, checklist *model.Checklist) error {
	checklist.Version = 1
	return create(ctx, r.db, checklist)
}

func (r *ChecklistRepository) FindByID(ctx context.Context, id uint) (*model.Checklist, error) {
	return findByID[model.Checklist](ctx, r.db, id)
}

func (r *ChecklistRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Checklist, error) {
	var checklists []model.Checklist
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("id asc").Find(&checklists).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return checklists, nil
}

func (r *ChecklistRepository) Update(ctx context.Context, checklist *model.Checklist) error {
	err := updateVersioned[model.Checklist](ctx, r.db, checklist.ID, checklist.Version, map[string]any{
		"description": checklist.Description,
		"is_checked":  checklist.IsChecked,
		"assignee":    checklist.Assignees,
	})
	if err != nil {
		return err
	}

	checklist.Version++
	return nil
}

func (r *ChecklistRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.Checklist](ctx, r.db, id)
}

func (r *ChecklistRepository) DeleteByTask(ctx context.Context, taskID uint) error {
	return errors.WithStack(r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.Checklist{}).Error)
}
