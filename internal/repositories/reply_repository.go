package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type ReplyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{db: db}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *model.MessageReply) error {
	return create(ctx, r.db, reply)
}

func (r *ReplyRepository) FindByID(ctx context.Context, id uint) (*model.MessageReply, error) {
	return findByID[model.MessageReply](ctx, r.db, id)
}

func (r *ReplyRepository) ListByMessage(ctx context.Context, messageID uint) ([]model.MessageReply, error) {
	var replies []model.MessageReply
	if err := r.db.WithContext(ctx).Where("message_id = ?", messageID).Order("id asc").Find(&replies).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return replies, nil
}

func (r *ReplyRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.MessageReply](ctx, r.db, id)
}

func (r *ReplyRepository) DeleteByMessage(ctx context.Context, messageID uint) error {
	return errors.WithStack(r.db.WithContext(ctx).Where("message_id = ?", messageID).Delete(&model.MessageReply{}).Error)
}
