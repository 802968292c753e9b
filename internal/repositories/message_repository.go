package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	message.Version = 1
	return create(ctx, r.db, message)
}

func (r *MessageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	return findByID[model.Message](ctx, r.db, id)
}

// ListSent returns the messages userID sent and has not hidden, newest first.
func (r *MessageRepository) ListSent(ctx context.Context, userID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND deleted_from_sender = ?", userID, false).
		Order("created_at desc").Order("id desc").
		Find(&messages).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return messages, nil
}

func (r *MessageRepository) ListReceived(ctx context.Context, userID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND deleted_from_receiver = ?", userID, false).
		Order("created_at desc").Order("id desc").
		Find(&messages).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return messages, nil
}

// UpdateVisibility stores both hide flags under the version check.
func (r *MessageRepository) UpdateVisibility(ctx context.Context, message *model.Message) error {
	err := updateVersioned[model.Message](ctx, r.db, message.ID, message.Version, map[string]any{
		"deleted_from_sender":   message.DeletedFromSender,
		"deleted_from_receiver": message.DeletedFromReceiver,
	})
	if err != nil {
		return err
	}

	message.Version++
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[model.Message](ctx, r.db, id)
}
