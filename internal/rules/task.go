package rules

import (
	"time"

	"digiwork-hub.com/digiwork-hub/internal/codec"
	"digiwork-hub.com/digiwork-hub/internal/constants"
)

func title(s string) Result {
	if !between(s, 15, 100) {
		return reject("Name should be 15-100 characters")
	}
	return accept()
}

func description(s string) Result {
	if !between(s, 50, 1000) {
		return reject("Description should be 50-1000 characters")
	}
	return accept()
}

// due must fall on a later calendar day than now; time of day is ignored.
func due(d, now time.Time) Result {
	y, m, day := d.In(now.Location()).Date()
	ny, nm, nday := now.Date()
	if !time.Date(y, m, day, 0, 0, 0, 0, time.UTC).After(time.Date(ny, nm, nday, 0, 0, 0, 0, time.UTC)) {
		return reject("Due should not be earlier than now")
	}
	return accept()
}

func assignees(ids []uint) Result {
	if len(ids) < constants.MinAssignees || len(ids) > constants.MaxAssignees {
		return reject("Assignees should range from 1 to 5")
	}
	return accept()
}

func creatorOnly(actor, creator uint, message string) Result {
	if actor != creator {
		return deny(message)
	}
	return accept()
}

func firstFailure(results ...Result) Result {
	for _, r := range results {
		if !r.OK() {
			return r
		}
	}
	return accept()
}

type TaskInput struct {
	Title       string
	Description string
	Due         time.Time
	Assignees   []uint
}

func NewTask(in TaskInput, now time.Time) Result {
	if in.Title == "" || in.Description == "" {
		return reject("Name and description should not be empty")
	}
	return firstFailure(title(in.Title), description(in.Description), due(in.Due, now), assignees(in.Assignees))
}

// NewSubtask validates a subtask created under a task owned by taskCreator
// and assigned to taskAssignees.
func NewSubtask(in TaskInput, now time.Time, actor, taskCreator uint, taskAssignees codec.IDList) Result {
	r := firstFailure(title(in.Title), description(in.Description), due(in.Due, now), assignees(in.Assignees))
	if !r.OK() {
		return r
	}
	if actor != taskCreator && !taskAssignees.Contains(actor) {
		return deny("Only assignees and task creator can add subtask")
	}
	return accept()
}

func NewChecklist(desc string, ids []uint, actor, taskCreator uint, taskAssignees codec.IDList) Result {
	r := firstFailure(description(desc), assignees(ids))
	if !r.OK() {
		return r
	}
	if actor != taskCreator && !taskAssignees.Contains(actor) {
		return deny("Only assignees and task creator can add checklist")
	}
	return accept()
}

func EditTitle(s string, actor, creator uint) Result {
	return firstFailure(title(s), creatorOnly(actor, creator, "Only task creator can edit name"))
}

func EditDescription(s string, actor, creator uint) Result {
	return firstFailure(description(s), creatorOnly(actor, creator, "Only task creator can edit description"))
}

func EditDue(d, now time.Time, actor, creator uint) Result {
	return firstFailure(due(d, now), creatorOnly(actor, creator, "Only task creator can edit due date"))
}

func EditAssignees(ids []uint, actor, creator uint) Result {
	return firstFailure(assignees(ids), creatorOnly(actor, creator, "Only task creator can edit assignees"))
}

// ChangeStatus is allowed only for members of the entity's own assignee
// list. Being the creator is not enough.
func ChangeStatus(status string, actor uint, entityAssignees codec.IDList) Result {
	if !entityAssignees.Contains(actor) {
		return deny("Only assignees can edit status")
	}
	if status == "" {
		return reject("Status should not be empty")
	}
	return accept()
}

func ChangePriority(priority string, actor, creator uint) Result {
	if r := creatorOnly(actor, creator, "Only task creator can edit priority"); !r.OK() {
		return r
	}
	if priority == "" {
		return reject("Priority should not be empty")
	}
	return accept()
}

func ChangeType(kind string, actor, creator uint) Result {
	if r := creatorOnly(actor, creator, "Only task creator can edit type"); !r.OK() {
		return r
	}
	if kind == "" {
		return reject("Type should not be empty")
	}
	return accept()
}

func ToggleChecklist(actor uint, checklistAssignees codec.IDList) Result {
	if !checklistAssignees.Contains(actor) {
		return deny("Only assignees can edit checklist")
	}
	return accept()
}

// Owner allows the operation only when actor is owner.
func Owner(actor, owner uint, message string) Result {
	return creatorOnly(actor, owner, message)
}
