package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	"digiwork-hub.com/digiwork-hub/internal/http/validators"
)

func (h *Handler) CreateChecklist(c echo.Context) error {
	actor, taskID, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.CreateChecklistRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateChecklistRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	checklist, err := h.svc.Checklists.Create(ctx, actor, taskID, req)
	if err != nil {
		return err
	}
	resp, err := h.projector.Checklist(ctx, checklist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// ToggleChecklist sets the flag to "check" when the body carries it and
// flips it otherwise. An empty body is accepted.
func (h *Handler) ToggleChecklist(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.ToggleChecklistRequest
	if c.Request().ContentLength != 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}

	ctx := c.Request().Context()
	checklist, err := h.svc.Checklists.Toggle(ctx, actor, id, req.Check)
	if err != nil {
		return err
	}
	resp, err := h.projector.Checklist(ctx, checklist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteChecklist(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Checklists.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}
