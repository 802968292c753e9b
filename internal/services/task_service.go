package services

import (
	"context"
	"strings"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/codec"
	"digiwork-hub.com/digiwork-hub/internal/constants"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	"digiwork-hub.com/digiwork-hub/internal/projection"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
)

type TaskService struct {
	*core
}

func orDefault(value, fallback string) string {
	if value = strings.TrimSpace(value); value == "" {
		return fallback
	}
	return value
}

func (s *TaskService) Create(ctx context.Context, actor auth.Actor, req dto.TaskRequestData) (*model.Task, error) {
	due, err := s.parseDue(req.Due)
	if err != nil {
		return nil, err
	}

	verdict := rules.NewTask(rules.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Due:         due,
		Assignees:   req.Assignees,
	}, s.now())
	if err := verdict.Err(); err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      constants.StatusOpen,
		Priority:    orDefault(req.Priority, constants.PriorityLow),
		Type:        orDefault(req.Type, constants.TypeTask),
		Due:         due,
		Assignees:   codec.IDList(recipients(req.Assignees)),
		CreatorID:   actor.ID,
	}
	err = s.apply(ctx, "task.create", func(tx *repository.Store) (outcome, error) {
		if err := tx.Tasks.Create(ctx, task); err != nil {
			return outcome{}, err
		}
		return outcome{notice: &notice{
			title:      "New Task Created",
			body:       actor.Name + " have assigned to you a new task.",
			recipients: recipients(task.Assignees),
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// taskEdit checks and applies one change to a loaded task, returning the
// notification to send once it is stored.
type taskEdit func(task *model.Task) (*notice, error)

func (s *TaskService) update(ctx context.Context, op string, id uint, edit taskEdit) (*model.Task, error) {
	var task *model.Task
	err := s.apply(ctx, op, func(tx *repository.Store) (outcome, error) {
		var err error
		if task, err = tx.Tasks.FindByID(ctx, id); err != nil {
			return outcome{}, missing(err, apperrors.ErrTaskNotFound)
		}

		n, err := edit(task)
		if err != nil {
			return outcome{}, err
		}
		if err := tx.Tasks.Update(ctx, task); err != nil {
			return outcome{}, err
		}
		return outcome{notice: n}, nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func taskNotice(actor auth.Actor, title, verb string, task *model.Task, to []uint) *notice {
	return &notice{
		title:      title,
		body:       actor.Name + " changed " + verb + " of task \"" + task.Title + "\".",
		recipients: recipients(to),
	}
}

// ChangeStatus is open to the task's assignees. Assignees and the creator
// are told.
func (s *TaskService) ChangeStatus(ctx context.Context, actor auth.Actor, id uint, status string) (*model.Task, error) {
	return s.update(ctx, "task.change_status", id, func(t *model.Task) (*notice, error) {
		if err := rules.ChangeStatus(status, actor.ID, t.Assignees).Err(); err != nil {
			return nil, err
		}
		t.Status = status
		return taskNotice(actor, "Task Status Updated", "status", t, recipients(t.Assignees, []uint{t.CreatorID})), nil
	})
}

// EditAssignees replaces the assignee list and notifies the new one.
func (s *TaskService) EditAssignees(ctx context.Context, actor auth.Actor, id uint, ids []uint) (*model.Task, error) {
	return s.update(ctx, "task.edit_assignees", id, func(t *model.Task) (*notice, error) {
		if err := rules.EditAssignees(ids, actor.ID, t.CreatorID).Err(); err != nil {
			return nil, err
		}
		t.Assignees = codec.IDList(recipients(ids))
		return taskNotice(actor, "Task Assignees Updated", "assignees", t, t.Assignees), nil
	})
}

func (s *TaskService) ChangeDue(ctx context.Context, actor auth.Actor, id uint, raw string) (*model.Task, error) {
	due, err := s.parseDue(raw)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, "task.change_due", id, func(t *model.Task) (*notice, error) {
		if err := rules.EditDue(due, s.now(), actor.ID, t.CreatorID).Err(); err != nil {
			return nil, err
		}
		t.Due = due
		return taskNotice(actor, "Task Due Date Updated", "due date", t, t.Assignees), nil
	})
}

func (s *TaskService) ChangePriority(ctx context.Context, actor auth.Actor, id uint, priority string) (*model.Task, error) {
	return s.update(ctx, "task.change_priority", id, func(t *model.Task) (*notice, error) {
		if err := rules.ChangePriority(priority, actor.ID, t.CreatorID).Err(); err != nil {
			return nil, err
		}
		t.Priority = priority
		return taskNotice(actor, "Task Priority Updated", "priority", t, t.Assignees), nil
	})
}

func (s *TaskService) ChangeType(ctx context.Context, actor auth.Actor, id uint, kind string) (*model.Task, error) {
	return s.update(ctx, "task.change_type", id, func(t *model.Task) (*notice, error) {
		if err := rules.ChangeType(kind, actor.ID, t.CreatorID).Err(); err != nil {
			return nil, err
		}
		t.Type = kind
		return taskNotice(actor, "Task Type Updated", "type", t, t.Assignees), nil
	})
}

// ChangeTitle names the task by its previous title in the notification.
func (s *TaskService) ChangeTitle(ctx context.Context, actor auth.Actor, id uint, title string) (*model.Task, error) {
	return s.update(ctx, "task.change_title", id, func(t *model.Task) (*notice, error) {
		if err := rules.EditTitle(title, actor.ID, t.CreatorID).Err(); err != nil {
			return nil, err
		}
		n := taskNotice(actor, "Task Name Updated", "name", t, t.Assignees)
		t.Title = title
		return n, nil
	})
}

func (s *TaskService) ChangeDescription(ctx context.Context, actor auth.Actor, id uint, description string) (*model.Task, error) {
	return s.update(ctx, "task.change_description", id, func(t *model.Task) (*notice, error) {
		if err := rules.EditDescription(description, actor.ID, t.CreatorID).Err(); err != nil {
			return nil, err
		}
		t.Description = description
		return taskNotice(actor, "Task Description Updated", "description", t, t.Assignees), nil
	})
}

// Delete removes the task with every subtask, checklist, comment and
// attachment row in one transaction. Attachment files go after the commit.
func (s *TaskService) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	return s.apply(ctx, "task.delete", func(tx *repository.Store) (outcome, error) {
		task, err := tx.Tasks.FindByID(ctx, id)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrTaskNotFound)
		}
		if err := rules.Owner(actor.ID, task.CreatorID, "Only task creator can delete task").Err(); err != nil {
			return outcome{}, err
		}

		attachments, err := tx.Attachments.ListByTask(ctx, task.ID)
		if err != nil {
			return outcome{}, err
		}

		for _, cascade := range []func(context.Context, uint) error{
			tx.Subtasks.DeleteByTask,
			tx.Checklists.DeleteByTask,
			tx.Comments.DeleteByTask,
			tx.Attachments.DeleteByTask,
		} {
			if err := cascade(ctx, task.ID); err != nil {
				return outcome{}, err
			}
		}
		if err := tx.Tasks.Delete(ctx, task.ID); err != nil {
			return outcome{}, err
		}

		out := outcome{notice: &notice{
			title:      "Task Deleted",
			body:       actor.Name + " deleted task \"" + task.Title + "\".",
			recipients: recipients(task.Assignees),
		}}
		for _, a := range attachments {
			out.discard = append(out.discard, a.Path)
		}
		return out, nil
	})
}

func (s *TaskService) ListAssigned(ctx context.Context, actor auth.Actor) ([]model.Task, error) {
	tasks, err := s.store.Tasks.ListAssignedTo(ctx, actor.ID)
	if err != nil {
		return nil, s.fail("task.list_assigned", err)
	}
	return tasks, nil
}

func (s *TaskService) ListCreated(ctx context.Context, actor auth.Actor) ([]model.Task, error) {
	tasks, err := s.store.Tasks.ListCreatedBy(ctx, actor.ID)
	if err != nil {
		return nil, s.fail("task.list_created", err)
	}
	return tasks, nil
}

// Get loads a task with everything it owns.
func (s *TaskService) Get(ctx context.Context, id uint) (projection.TaskGraph, error) {
	var g projection.TaskGraph
	var err error

	if g.Task, err = s.store.Tasks.FindByID(ctx, id); err != nil {
		return g, s.fail("task.get", missing(err, apperrors.ErrTaskNotFound))
	}
	if g.Comments, err = s.store.Comments.ListByTask(ctx, id); err != nil {
		return g, s.fail("task.get", err)
	}
	if g.Subtasks, err = s.store.Subtasks.ListByTask(ctx, id); err != nil {
		return g, s.fail("task.get", err)
	}
	if g.Checklists, err = s.store.Checklists.ListByTask(ctx, id); err != nil {
		return g, s.fail("task.get", err)
	}
	if g.Attachments, err = s.store.Attachments.ListByTask(ctx, id); err != nil {
		return g, s.fail("task.get", err)
	}
	return g, nil
}
