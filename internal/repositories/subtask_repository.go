package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type SubtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, subtask *model.Subtask) error {
	subtask.Version = 1
	return create(ctx, r.db, subtask)
}

func (r *SubtaskRepository) FindByID(ctx context.Context, id uint) (*model.Subtask, error) {
	return findByID[model.Subtask](ctx, r.db, id)
}

func (r *SubtaskRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Subtask, error) {
	var subtasks []model.Subtask
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("id asc").Find(&subtasks).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return subtasks, nil
}

func (r *SubtaskRepository) Update(ctx context.Context, subtask *model.Subtask) error {
	err := updateVersioned[model.Subtask](ctx, r.db, subtask.ID, subtask.Version, map[string]any{
		"title":       subtask.Title,
		"description": subtask.Description,
		"status":      subtask.Status,
		"priority":    subtask.Priority,
		"type":        subtask.Type,
		"due":         subtask.Due,
		"assignee":    subtask.Assignees,
	})
	if err != nil {
		return err
	}

	subtask.Version++
	return nil
}

func (r *SubtaskRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.Subtask](ctx, r.db, id)
}

func (r *SubtaskRepository) DeleteByTask(ctx context.Context, taskID uint) error {
	return errors.WithStack(r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.Subtask{}).Error)
}
