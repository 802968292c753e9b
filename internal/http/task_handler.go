package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	middleware "digiwork-hub.com/digiwork-hub/internal/http/middlewares"
	"digiwork-hub.com/digiwork-hub/internal/http/validators"
	model "digiwork-hub.com/digiwork-hub/internal/models"
)

func (h *Handler) CreateTask(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
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
	task, err := h.svc.Tasks.Create(ctx, actor, req)
	if err != nil {
		return err
	}
	resp, err := h.projector.Task(ctx, task)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// taskEdit binds req, runs apply against the task in the path and renders
// the updated task.
func (h *Handler) taskEdit(c echo.Context, req any, apply func() (*model.Task, error)) error {
	if err := bind(c, req); err != nil {
		return err
	}
	task, err := apply()
	if err != nil {
		return err
	}
	resp, err := h.projector.Task(c.Request().Context(), task)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ChangeTaskStatus(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.ChangeStatus(c.Request().Context(), actor, id, req.Status)
	})
}

func (h *Handler) EditTaskAssignees(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.AssigneesRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.EditAssignees(c.Request().Context(), actor, id, req.Assignees)
	})
}

func (h *Handler) ChangeTaskDue(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.DueRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.ChangeDue(c.Request().Context(), actor, id, req.Due)
	})
}

func (h *Handler) ChangeTaskPriority(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.PriorityRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.ChangePriority(c.Request().Context(), actor, id, req.Priority)
	})
}

func (h *Handler) ChangeTaskType(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.TypeRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.ChangeType(c.Request().Context(), actor, id, req.Type)
	})
}

func (h *Handler) ChangeTaskTitle(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.TitleRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.ChangeTitle(c.Request().Context(), actor, id, req.Title)
	})
}

func (h *Handler) ChangeTaskDescription(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.DescriptionRequest
	return h.taskEdit(c, &req, func() (*model.Task, error) {
		return h.svc.Tasks.ChangeDescription(c.Request().Context(), actor, id, req.Description)
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Tasks.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) ListAssignedTasks(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	tasks, err := h.svc.Tasks.ListAssigned(ctx, actor)
	if err != nil {
		return err
	}
	resp, err := h.projector.Tasks(ctx, tasks)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCreatedTasks(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	tasks, err := h.svc.Tasks.ListCreated(ctx, actor)
	if err != nil {
		return err
	}
	resp, err := h.projector.Tasks(ctx, tasks)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	graph, err := h.svc.Tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	resp, err := h.projector.TaskDetail(ctx, graph)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
