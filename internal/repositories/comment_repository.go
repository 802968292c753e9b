package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.TaskComment) error {
	comment.Version = 1
	return create(ctx, r.db, comment)
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*model.TaskComment, error) {
	return findByID[model.TaskComment](ctx, r.db, id)
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint) ([]model.TaskComment, error) {
	var comments []model.TaskComment
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("id asc").Find(&comments).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return comments, nil
}

// UpdateLikes stores the like list under the version check.
func (r *CommentRepository) UpdateLikes(ctx context.Context, comment *model.TaskComment) error {
	err := updateVersioned[model.TaskComment](ctx, r.db, comment.ID, comment.Version, map[string]any{
		"likes_id": comment.LikeIDs,
	})
	if err != nil {
		return err
	}

	comment.Version++
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.TaskComment](ctx, r.db, id)
}

func (r *CommentRepository) DeleteByTask(ctx context.Context, taskID uint) error {
	return errors.WithStack(r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.TaskComment{}).Error)
}
