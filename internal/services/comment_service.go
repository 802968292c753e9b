package services

import (
	"context"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/codec"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
)

type CommentService struct {
	*core
}

// Create posts a comment on a task. The task's assignees and creator are
// notified.
func (s *CommentService) Create(ctx context.Context, actor auth.Actor, taskID uint, req dto.CreateCommentRequest) (*model.TaskComment, error) {
	description := s.clean(req.Description)
	if err := rules.Comment(description).Err(); err != nil {
		return nil, err
	}

	comment := &model.TaskComment{
		TaskID:      taskID,
		UserID:      actor.ID,
		Description: description,
		ReplyIDs:    codec.IDList(recipients(req.ReplyIDs)),
		MentionIDs:  codec.IDList(recipients(req.MentionIDs)),
		LikeIDs:     codec.IDList{},
	}
	err := s.apply(ctx, "comment.create", func(tx *repository.Store) (outcome, error) {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrTaskNotFound)
		}
		if err := tx.Comments.Create(ctx, comment); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "Sent Comment",
			body:       actor.Name + " have sent comment to task.",
			recipients: recipients(task.Assignees, []uint{task.CreatorID}),
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike adds the actor to the comment's likes, or removes them when
// already present.
func (s *CommentService) ToggleLike(ctx context.Context, actor auth.Actor, id uint) (*model.TaskComment, error) {
	var comment *model.TaskComment
	err := s.apply(ctx, "comment.like", func(tx *repository.Store) (outcome, error) {
		var err error
		if comment, err = tx.Comments.FindByID(ctx, id); err != nil {
			return outcome{}, missing(err, apperrors.ErrCommentNotFound)
		}
		comment.LikeIDs, _ = comment.LikeIDs.Toggle(actor.ID)
		return outcome{}, tx.Comments.UpdateLikes(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "comment.delete", func(tx *repository.Store) (outcome, error) {
		comment, err := tx.Comments.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrCommentNotFound)
		}
		if err := rules.Owner(actor.ID, comment.UserID, "You cannot delete comment that you did not send.").Err(); err != nil {
			return outcome{}, err
		}
		return outcome{}, tx.Comments.Delete(ctx, comment.ID)
	})
}
