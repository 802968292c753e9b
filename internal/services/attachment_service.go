package services

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

type AttachmentService struct {
	*core
}

// Upload stores the file first and inserts the row second. When the insert
// fails the file is removed again.
func (s *AttachmentService) Upload(ctx context.Context, actor auth.Actor, taskID uint, upload storage.Upload) (*model.Attachment, error) {
	name := filepath.Base(upload.Name)
	if err := rules.Attachment(name).Err(); err != nil {
		return nil, err
	}

	p, err := s.files.SaveAttachment(upload)
	if err != nil {
		return nil, s.fail("attachment.upload", err)
	}

	attachment := &model.Attachment{TaskID: taskID, UserID: actor.ID, Path: p, FileName: name}
	err = s.apply(ctx, "attachment.upload", func(tx *repository.Store) (outcome, error) {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrTaskNotFound)
		}
		if err := tx.Attachments.Create(ctx, attachment); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "Attachment",
			body:       actor.Name + " sent attachment.",
			recipients: recipients(task.Assignees, []uint{task.CreatorID}),
		}}, nil
	})
	if err != nil {
		s.files.RemoveAll([]string{p})
		return nil, err
	}
	return attachment, nil
}

// Open returns the attachment row and its file. The caller closes the file.
func (s *AttachmentService) Open(ctx context.Context, id uint) (*model.Attachment, afero.File, error) {
	attachment, err := s.store.Attachments.FindByID(ctx, id)
	if err != nil {
		return nil, nil, s.fail("attachment.open", missing(err, apperrors.ErrAttachmentNotFound))
	}

	f, err := s.files.Open(attachment.Path)
	if err != nil {
		return nil, nil, apperrors.NotFound("attachment file not found")
	}
	return attachment, f, nil
}

func (s *AttachmentService) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "attachment.delete", func(tx *repository.Store) (outcome, error) {
		attachment, err := tx.Attachments.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrAttachmentNotFound)
		}
		if err := rules.Owner(actor.ID, attachment.UserID, "You cannot delete attachment you did not upload.").Err(); err != nil {
			return outcome{}, err
		}
		if err := tx.Attachments.Delete(ctx, attachment.ID); err != nil {
			return outcome{}, err
		}
		return outcome{discard: []string{attachment.Path}}, nil
	})
}
