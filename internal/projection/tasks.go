package projection

import (
	"context"

	"digiwork-hub.com/digiwork-hub/internal/codec"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	model "digiwork-hub.com/digiwork-hub/internal/models"
)

// TaskGraph is a task with every row it owns.
type TaskGraph struct {
	Task        *model.Task
	Comments    []model.TaskComment
	Subtasks    []model.Subtask
	Checklists  []model.Checklist
	Attachments []model.Attachment
}

func (p *Projector) Task(ctx context.Context, t *model.Task) (dto.TaskResponse, error) {
	r := p.resolver(ctx)
	resp := r.task(t)
	return resp, r.err
}

func (p *Projector) Tasks(ctx context.Context, tasks []model.Task) ([]dto.TaskResponse, error) {
	r := p.resolver(ctx)
	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, r.task(&tasks[i]))
	}
	return out, r.err
}

func (p *Projector) TaskDetail(ctx context.Context, g TaskGraph) (dto.TaskDetailResponse, error) {
	r := p.resolver(ctx)
	resp := dto.TaskDetailResponse{
		TaskResponse: r.task(g.Task),
		SentDate:     codec.FormatDate(g.Task.CreatedAt),
		Comments:     make([]dto.CommentResponse, 0, len(g.Comments)),
		Subtasks:     make([]dto.SubtaskResponse, 0, len(g.Subtasks)),
		Checklists:   make([]dto.ChecklistResponse, 0, len(g.Checklists)),
		Attachments:  make([]dto.AttachmentResponse, 0, len(g.Attachments)),
	}

	for i := range g.Comments {
		resp.Comments = append(resp.Comments, r.comment(&g.Comments[i]))
	}
	for i := range g.Subtasks {
		resp.Subtasks = append(resp.Subtasks, r.subtask(&g.Subtasks[i]))
	}
	for i := range g.Checklists {
		resp.Checklists = append(resp.Checklists, r.checklist(&g.Checklists[i]))
	}
	for i := range g.Attachments {
		resp.Attachments = append(resp.Attachments, r.attachment(&g.Attachments[i]))
	}

	return resp, r.err
}

func (p *Projector) Subtask(ctx context.Context, s *model.Subtask) (dto.SubtaskResponse, error) {
	r := p.resolver(ctx)
	resp := r.subtask(s)
	return resp, r.err
}

func (p *Projector) Checklist(ctx context.Context, c *model.Checklist) (dto.ChecklistResponse, error) {
	r := p.resolver(ctx)
	resp := r.checklist(c)
	return resp, r.err
}

func (p *Projector) Comment(ctx context.Context, c *model.TaskComment) (dto.CommentResponse, error) {
	r := p.resolver(ctx)
	resp := r.comment(c)
	return resp, r.err
}

func (p *Projector) Attachment(ctx context.Context, a *model.Attachment) (dto.AttachmentResponse, error) {
	r := p.resolver(ctx)
	resp := r.attachment(a)
	return resp, r.err
}

func (r *resolver) task(t *model.Task) dto.TaskResponse {
	return dto.TaskResponse{
		TaskID:      t.ID,
		Title:       t.Title,
		Description: t.Description,
		Due:         codec.FormatDate(t.Due),
		Priority:    t.Priority,
		Status:      t.Status,
		Type:        t.Type,
		Assignees:   r.summaries(t.Assignees),
		Creator:     r.user(t.CreatorID),
	}
}

func (r *resolver) subtask(s *model.Subtask) dto.SubtaskResponse {
	return dto.SubtaskResponse{
		SubtaskID:   s.ID,
		TaskID:      s.TaskID,
		Title:       s.Title,
		Description: s.Description,
		Due:         codec.FormatDate(s.Due),
		Priority:    s.Priority,
		Status:      s.Status,
		Type:        s.Type,
		Assignees:   r.summaries(s.Assignees),
		Creator:     r.user(s.CreatorID),
	}
}

func (r *resolver) checklist(c *model.Checklist) dto.ChecklistResponse {
	return dto.ChecklistResponse{
		ChecklistID: c.ID,
		TaskID:      c.TaskID,
		User:        r.user(c.UserID),
		Description: c.Description,
		IsChecked:   c.IsChecked,
		Assignees:   r.summaries(c.Assignees),
		SentDate:    codec.FormatDate(c.CreatedAt),
	}
}

func (r *resolver) comment(c *model.TaskComment) dto.CommentResponse {
	return dto.CommentResponse{
		CommentID:    c.ID,
		TaskID:       c.TaskID,
		Description:  c.Description,
		ReplyIDs:     ids(c.ReplyIDs),
		MentionNames: r.names(c.MentionIDs),
		User:         r.user(c.UserID),
		SentDate:     codec.FormatDate(c.CreatedAt),
		LikeIDs:      ids(c.LikeIDs),
	}
}

func (r *resolver) attachment(a *model.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		AttachmentID:   a.ID,
		TaskID:         a.TaskID,
		User:           r.user(a.UserID),
		AttachmentPath: a.Path,
		FileName:       a.FileName,
		SentDate:       codec.FormatDate(a.CreatedAt),
	}
}
