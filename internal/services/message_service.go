package services

import (
	"context"
	"path/filepath"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/codec"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

type MessageService struct {
	*core
}

// fileNames returns the client names of uploads, made safe for a pipe list.
func fileNames(uploads []storage.Upload) []string {
	names := make([]string, 0, len(uploads))
	for _, u := range uploads {
		names = append(names, codec.CleanName(filepath.Base(u.Name)))
	}
	return names
}

// Send delivers a direct message with up to five files to an existing user.
func (s *MessageService) Send(ctx context.Context, actor auth.Actor, body dto.MessageBody, uploads []storage.Upload) (*model.Message, error) {
	title := s.clean(body.Title)
	description := s.clean(body.Description)
	names := fileNames(uploads)
	if err := rules.Message(title, description, names).Err(); err != nil {
		return nil, err
	}

	paths, err := s.files.SaveAttachments(uploads)
	if err != nil {
		return nil, s.fail("message.send", err)
	}

	message := &model.Message{
		Title:           title,
		Description:     description,
		SenderID:        actor.ID,
		ReceiverID:      body.ReceiverID,
		AttachmentPaths: codec.PathList(paths),
		FileNames:       codec.PathList(names),
	}
	err = s.apply(ctx, "message.send", func(tx *repository.Store) (outcome, error) {
		if _, err := tx.Users.FindByID(ctx, body.ReceiverID); err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}
		if err := tx.Messages.Create(ctx, message); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "New Message",
			body:       actor.Name + " send you a message.",
			recipients: []uint{message.ReceiverID},
		}}, nil
	})
	if err != nil {
		s.files.RemoveAll(paths)
		return nil, err
	}
	return message, nil
}

// Reply answers a message. Any reply makes the conversation visible to both
// parties again.
func (s *MessageService) Reply(ctx context.Context, actor auth.Actor, messageID uint, body dto.ReplyBody, uploads []storage.Upload) (*model.MessageReply, error) {
	description := s.clean(body.Description)
	names := fileNames(uploads)
	if err := rules.Reply(description, names).Err(); err != nil {
		return nil, err
	}

	paths, err := s.files.SaveAttachments(uploads)
	if err != nil {
		return nil, s.fail("message.reply", err)
	}

	reply := &model.MessageReply{
		MessageID:       messageID,
		Description:     description,
		FromID:          actor.ID,
		AttachmentPaths: codec.PathList(paths),
		FileNames:       codec.PathList(names),
	}
	err = s.apply(ctx, "message.reply", func(tx *repository.Store) (outcome, error) {
		message, err := tx.Messages.FindByID(ctx, messageID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrMessageNotFound)
		}
		if !message.Involves(actor.ID) {
			return outcome{}, apperrors.Forbidden("You cannot reply to a message you are not part of.")
		}

		if err := tx.Replies.Create(ctx, reply); err != nil {
			return outcome{}, err
		}
		message.DeletedFromSender = false
		message.DeletedFromReceiver = false
		if err := tx.Messages.UpdateVisibility(ctx, message); err != nil {
			return outcome{}, err
		}

		return outcome{notice: &notice{
			title:      "New Reply",
			body:       actor.Name + " replies to your message.",
			recipients: []uint{message.Counterpart(actor.ID)},
		}}, nil
	})
	if err != nil {
		s.files.RemoveAll(paths)
		return nil, err
	}
	return reply, nil
}

func (s *MessageService) ListSent(ctx context.Context, actor auth.Actor) ([]model.Message, error) {
	messages, err := s.store.Messages.ListSent(ctx, actor.ID)
	if err != nil {
		return nil, s.fail("message.list_sent", err)
	}
	return messages, nil
}

func (s *MessageService) ListReceived(ctx context.Context, actor auth.Actor) ([]model.Message, error) {
	messages, err := s.store.Messages.ListReceived(ctx, actor.ID)
	if err != nil {
		return nil, s.fail("message.list_received", err)
	}
	return messages, nil
}

// Get returns a message and its replies. Outsiders get NotFound.
func (s *MessageService) Get(ctx context.Context, actor auth.Actor, id uint) (*model.Message, []model.MessageReply, error) {
	message, err := s.store.Messages.FindByID(ctx, id)
	if err != nil {
		return nil, nil, s.fail("message.get", missing(err, apperrors.ErrMessageNotFound))
	}
	if !message.Involves(actor.ID) {
		return nil, nil, apperrors.ErrMessageNotFound
	}

	replies, err := s.store.Replies.ListByMessage(ctx, id)
	if err != nil {
		return nil, nil, s.fail("message.get", err)
	}
	return message, replies, nil
}

// Hide removes the message from the actor's own lists only.
func (s *MessageService) Hide(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "message.hide", func(tx *repository.Store) (outcome, error) {
		message, err := tx.Messages.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrMessageNotFound)
		}
		if !message.Involves(actor.ID) {
			return outcome{}, apperrors.Forbidden("You cannot delete a message you are not part of.")
		}

		if message.SenderID == actor.ID {
			message.DeletedFromSender = true
		}
		if message.ReceiverID == actor.ID {
			message.DeletedFromReceiver = true
		}
		return outcome{}, tx.Messages.UpdateVisibility(ctx, message)
	})
}

// Delete removes the message, its replies and every file they carry. Only
// the sender may do this.
func (s *MessageService) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "message.delete", func(tx *repository.Store) (outcome, error) {
		message, err := tx.Messages.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrMessageNotFound)
		}
		if err := rules.Owner(actor.ID, message.SenderID, "You cannot delete message you did not send.").Err(); err != nil {
			return outcome{}, err
		}

		replies, err := tx.Replies.ListByMessage(ctx, message.ID)
		if err != nil {
			return outcome{}, err
		}
		if err := tx.Replies.DeleteByMessage(ctx, message.ID); err != nil {
			return outcome{}, err
		}
		if err := tx.Messages.Delete(ctx, message.ID); err != nil {
			return outcome{}, err
		}

		out := outcome{discard: append([]string{}, message.AttachmentPaths...)}
		for _, r := range replies {
			out.discard = append(out.discard, r.AttachmentPaths...)
		}
		return out, nil
	})
}

func (s *MessageService) DeleteReply(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "message.delete_reply", func(tx *repository.Store) (outcome, error) {
		reply, err := tx.Replies.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrReplyNotFound)
		}
		if err := rules.Owner(actor.ID, reply.FromID, "You cannot delete reply you did not send.").Err(); err != nil {
			return outcome{}, err
		}
		if err := tx.Replies.Delete(ctx, reply.ID); err != nil {
			return outcome{}, err
		}
		return outcome{discard: append([]string{}, reply.AttachmentPaths...)}, nil
	})
}
