package services

import (
	"context"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/codec"
	"digiwork-hub.com/digiwork-hub/internal/constants"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
)

type SubtaskService struct {
	*core
}

// Create adds a subtask under taskID. Only the task's creator and assignees
// may do so.
func (s *SubtaskService) Create(ctx context.Context, actor auth.Actor, taskID uint, req dto.TaskRequestData) (*model.Subtask, error) {
	due, err := s.parseDue(req.Due)
	if err != nil {
		return nil, err
	}

	subtask := &model.Subtask{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Status:      constants.StatusOpen,
		Priority:    orDefault(req.Priority, constants.PriorityLow),
		Type:        orDefault(req.Type, constants.TypeTask),
		Due:         due,
		Assignees:   codec.IDList(recipients(req.Assignees)),
		CreatorID:   actor.ID,
	}
	err = s.apply(ctx, "subtask.create", func(tx *repository.Store) (outcome, error) {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrTaskNotFound)
		}

		verdict := rules.NewSubtask(rules.TaskInput{
			Title:       req.Title,
			Description: req.Description,
			Due:         due,
			Assignees:   req.Assignees,
		}, s.now(), actor.ID, task.CreatorID, task.Assignees)
		if err := verdict.Err(); err != nil {
			return outcome{}, err
		}

		if err := tx.Subtasks.Create(ctx, subtask); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "New Subtask Created",
			body:       actor.Name + " have assigned to you a new subtask.",
			recipients: recipients(subtask.Assignees),
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

type subtaskEdit func(subtask *model.Subtask) (*notice, error)

func (s *SubtaskService) update(ctx context.Context, op string, id uint, edit subtaskEdit) (*model.Subtask, error) {
	var subtask *model.Subtask
	err := s.apply(ctx, op, func(tx *repository.Store) (outcome, error) {
		var err error
		if subtask, err = tx.Subtasks.FindByID(ctx, id); err != nil {
			return outcome{}, missing(err, apperrors.ErrSubtaskNotFound)
		}

		n, err := edit(subtask)
		if err != nil {
			return outcome{}, err
		}
		if err := tx.Subtasks.Update(ctx, subtask); err != nil {
			return outcome{}, err
		}
		return outcome{notice: n}, nil
	})
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

func subtaskNotice(actor auth.Actor, title, verb string, to ...[]uint) *notice {
	return &notice{
		title:      title,
		body:       actor.Name + " changed " + verb + " of subtask.",
		recipients: recipients(to...),
	}
}

func (s *SubtaskService) ChangeStatus(ctx context.Context, actor auth.Actor, id uint, status string) (*model.Subtask, error) {
	return s.update(ctx, "subtask.change_status", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.ChangeStatus(status, actor.ID, st.Assignees).Err(); err != nil {
			return nil, err
		}
		st.Status = status
		return subtaskNotice(actor, "Subtask Status Updated", "status", st.Assignees, []uint{st.CreatorID}), nil
	})
}

func (s *SubtaskService) EditAssignees(ctx context.Context, actor auth.Actor, id uint, ids []uint) (*model.Subtask, error) {
	return s.update(ctx, "subtask.edit_assignees", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.EditAssignees(ids, actor.ID, st.CreatorID).Err(); err != nil {
			return nil, err
		}
		st.Assignees = codec.IDList(recipients(ids))
		return subtaskNotice(actor, "Subtask Assignees Updated", "assignees", st.Assignees), nil
	})
}

func (s *SubtaskService) ChangeDue(ctx context.Context, actor auth.Actor, id uint, raw string) (*model.Subtask, error) {
	due, err := s.parseDue(raw)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, "subtask.change_due", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.EditDue(due, s.now(), actor.ID, st.CreatorID).Err(); err != nil {
			return nil, err
		}
		st.Due = due
		return subtaskNotice(actor, "Subtask Due Date Updated", "due date", st.Assignees), nil
	})
}

func (s *SubtaskService) ChangePriority(ctx context.Context, actor auth.Actor, id uint, priority string) (*model.Subtask, error) {
	return s.update(ctx, "subtask.change_priority", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.ChangePriority(priority, actor.ID, st.CreatorID).Err(); err != nil {
			return nil, err
		}
		st.Priority = priority
		return subtaskNotice(actor, "Subtask Priority Updated", "priority", st.Assignees), nil
	})
}

func (s *SubtaskService) ChangeType(ctx context.Context, actor auth.Actor, id uint, kind string) (*model.Subtask, error) {
	return s.update(ctx, "subtask.change_type", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.ChangeType(kind, actor.ID, st.CreatorID).Err(); err != nil {
			return nil, err
		}
		st.Type = kind
		return subtaskNotice(actor, "Subtask Type Updated", "type", st.Assignees), nil
	})
}

func (s *SubtaskService) ChangeTitle(ctx context.Context, actor auth.Actor, id uint, title string) (*model.Subtask, error) {
	return s.update(ctx, "subtask.change_title", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.EditTitle(title, actor.ID, st.CreatorID).Err(); err != nil {
			return nil, err
		}
		st.Title = title
		return subtaskNotice(actor, "Subtask Name Updated", "name", st.Assignees), nil
	})
}

func (s *SubtaskService) ChangeDescription(ctx context.Context, actor auth.Actor, id uint, description string) (*model.Subtask, error) {
	return s.update(ctx, "subtask.change_description", id, func(st *model.Subtask) (*notice, error) {
		if err := rules.EditDescription(description, actor.ID, st.CreatorID).Err(); err != nil {
			return nil, err
		}
		st.Description = description
		return subtaskNotice(actor, "Subtask Description Updated", "description", st.Assignees), nil
	})
}

func (s *SubtaskService) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "subtask.delete", func(tx *repository.Store) (outcome, error) {
		subtask, err := tx.Subtasks.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrSubtaskNotFound)
		}
		if err := rules.Owner(actor.ID, subtask.CreatorID, "You cannot delete subtask you did not create.").Err(); err != nil {
			return outcome{}, err
		}
		if err := tx.Subtasks.Delete(ctx, subtask.ID); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "Subtask Deleted",
			body:       actor.Name + " deleted subtask.",
			recipients: recipients(subtask.Assignees),
		}}, nil
	})
}
