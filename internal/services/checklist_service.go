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

type ChecklistService struct {
	*core
}

func (s *ChecklistService) Create(ctx context.Context, actor auth.Actor, taskID uint, req dto.CreateChecklistRequest) (*model.Checklist, error) {
	checklist := &model.Checklist{
		TaskID:      taskID,
		UserID:      actor.ID,
		Description: req.Description,
		Assignees:   codec.IDList(recipients(req.Assignees)),
	}

	err := s.apply(ctx, "checklist.create", func(tx *repository.Store) (outcome, error) {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrTaskNotFound)
		}

		verdict := rules.NewChecklist(req.Description, req.Assignees, actor.ID, task.CreatorID, task.Assignees)
		if err := verdict.Err(); err != nil {
			return outcome{}, err
		}

		if err := tx.Checklists.Create(ctx, checklist); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "New Checklist Created",
			body:       actor.Name + " created new checklist.",
			recipients: recipients(checklist.Assignees),
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return checklist, nil
}

// Toggle sets the checked flag, or flips it when check is nil.
func (s *ChecklistService) Toggle(ctx context.Context, actor auth.Actor, id uint, check *bool) (*model.Checklist, error) {
	var checklist *model.Checklist
	err := s.apply(ctx, "checklist.toggle", func(tx *repository.Store) (outcome, error) {
		var err error
		if checklist, err = tx.Checklists.FindByID(ctx, id); err != nil {
			return outcome{}, missing(err, apperrors.ErrChecklistNotFound)
		}
		if err := rules.ToggleChecklist(actor.ID, checklist.Assignees).Err(); err != nil {
			return outcome{}, err
		}

		checked := !checklist.IsChecked
		if check != nil {
			checked = *check
		}
		checklist.IsChecked = checked
		if err := tx.Checklists.Update(ctx, checklist); err != nil {
			return outcome{}, err
		}

		title, verb := "Checklist Unchecked", "unchecked"
		if checked {
			title, verb = "Checklist Checked", "checked"
		}
		return outcome{notice: &notice{
			title:      title,
			body:       actor.Name + " " + verb + " checklist.",
			recipients: recipients(checklist.Assignees),
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *ChecklistService) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "checklist.delete", func(tx *repository.Store) (outcome, error) {
		checklist, err := tx.Checklists.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrChecklistNotFound)
		}
		if err := rules.Owner(actor.ID, checklist.UserID, "You cannot delete checklist you did not create.").Err(); err != nil {
			return outcome{}, err
		}
		if err := tx.Checklists.Delete(ctx, checklist.ID); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "Checklist Deleted",
			body:       actor.Name + " deleted checklist.",
			recipients: recipients(checklist.Assignees),
		}}, nil
	})
}
