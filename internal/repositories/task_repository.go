package repository

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.Version = 1
	return create(ctx, r.db, task)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	return findByID[model.Task](ctx, r.db, id)
}

// ListAssignedTo narrows with LIKE and then checks decoded membership, so
// user 1 does not match an assignee list holding 11.
func (r *TaskRepository) ListAssignedTo(ctx context.Context, userID uint) ([]model.Task, error) {
	var candidates []model.Task
	err := r.db.WithContext(ctx).
		Where("assignee LIKE ?", "%"+strconv.FormatUint(uint64(userID), 10)+"%").
		Order("created_at desc").
		Find(&candidates).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]model.Task, 0, len(candidates))
	for _, t := range candidates {
		if t.Assignees.Contains(userID) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) ListCreatedBy(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	err := updateVersioned[model.Task](ctx, r.db, task.ID, task.Version, map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"priority":    task.Priority,
		"type":        task.Type,
		"due":         task.Due,
		"assignee":    task.Assignees,
	})
	if err != nil {
		return err
	}

	task.Version++
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.Task](ctx, r.db, id)
}
