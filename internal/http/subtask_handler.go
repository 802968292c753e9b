package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	"digiwork-hub.com/digiwork-hub/internal/http/validators"
	model "digiwork-hub.com/digiwork-hub/internal/models"
)

func (h *Handler) CreateSubtask(c echo.Context) error {
	actor, taskID, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.TaskRequestData
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	subtask, err := h.svc.Subtasks.Create(ctx, actor, taskID, req)
	if err != nil {
		return err
	}
	resp, err := h.projector.Subtask(ctx, subtask)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) subtaskEdit(c echo.Context, req any, apply func() (*model.Subtask, error)) error {
	if err := bind(c, req); err != nil {
		return err
	}
	subtask, err := apply()
	if err != nil {
		return err
	}
	resp, err := h.projector.Subtask(c.Request().Context(), subtask)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ChangeSubtaskStatus(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.ChangeStatus(c.Request().Context(), actor, id, req.Status)
	})
}

func (h *Handler) EditSubtaskAssignees(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.AssigneesRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.EditAssignees(c.Request().Context(), actor, id, req.Assignees)
	})
}

func (h *Handler) ChangeSubtaskDue(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.DueRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.ChangeDue(c.Request().Context(), actor, id, req.Due)
	})
}

func (h *Handler) ChangeSubtaskPriority(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.PriorityRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.ChangePriority(c.Request().Context(), actor, id, req.Priority)
	})
}

func (h *Handler) ChangeSubtaskType(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.TypeRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.ChangeType(c.Request().Context(), actor, id, req.Type)
	})
}

func (h *Handler) ChangeSubtaskTitle(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.TitleRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.ChangeTitle(c.Request().Context(), actor, id, req.Title)
	})
}

func (h *Handler) ChangeSubtaskDescription(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.DescriptionRequest
	return h.subtaskEdit(c, &req, func() (*model.Subtask, error) {
		return h.svc.Subtasks.ChangeDescription(c.Request().Context(), actor, id, req.Description)
	})
}

func (h *Handler) DeleteSubtask(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Subtasks.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}
