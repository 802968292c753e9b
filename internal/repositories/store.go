package repository

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "digiwork-hub.com/digiwork-hub/internal/models"
)

// Store groups the entity repositories over one connection or transaction.
type Store struct {
	db *gorm.DB

	Users       *UserRepository
	Tasks       *TaskRepository
	Subtasks    *SubtaskRepository
	Checklists  *ChecklistRepository
	Comments    *CommentRepository
	Attachments *AttachmentRepository
	Messages    *MessageRepository
	Replies     *ReplyRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Users:       NewUserRepository(db),
		Tasks:       NewTaskRepository(db),
		Subtasks:    NewSubtaskRepository(db),
		Checklists:  NewChecklistRepository(db),
		Comments:    NewCommentRepository(db),
		Attachments: NewAttachmentRepository(db),
		Messages:    NewMessageRepository(db),
		Replies:     NewReplyRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single transaction. Any
// error returned by fn rolls every change back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// ReferencedPaths returns every stored file path that a row still points at.
func (s *Store) ReferencedPaths(ctx context.Context) (mapset.Set[string], error) {
	paths := mapset.NewThreadUnsafeSet[string]()
	db := s.db.WithContext(ctx)

	var single []string
	if err := db.Model(&model.Attachment{}).Pluck("attachment_path", &single).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	paths.Append(single...)

	single = nil
	if err := db.Model(&model.User{}).Pluck("image_path", &single).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	paths.Append(single...)

	var messages []model.Message
	if err := db.Select("attachment_paths").Find(&messages).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	for _, m := range messages {
		paths.Append(m.AttachmentPaths...)
	}

	var replies []model.MessageReply
	if err := db.Select("attachment_paths").Find(&replies).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	for _, r := range replies {
		paths.Append(r.AttachmentPaths...)
	}

	return paths, nil
}
