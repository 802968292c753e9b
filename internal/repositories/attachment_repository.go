package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, attachment *model.Attachment) error {
	return create(ctx, r.db, attachment)
}

func (r *AttachmentRepository) FindByID(ctx context.Context, id uint) (*model.Attachment, error) {
	return findByID[model.Attachment](ctx, r.db, id)
}

func (r *AttachmentRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Attachment, error) {
	var attachments []model.Attachment
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("id asc").Find(&attachments).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.Attachment](ctx, r.db, id)
}

func (r *AttachmentRepository) DeleteByTask(ctx context.Context, taskID uint) error {
	return errors.WithStack(r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.Attachment{}).Error)
}
