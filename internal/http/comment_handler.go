package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
)

func (h *Handler) CreateComment(c echo.Context) error {
	actor, taskID, err := actorAndID(c)
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	comment, err := h.svc.Comments.Create(ctx, actor, taskID, req)
	if err != nil {
		return err
	}
	resp, err := h.projector.Comment(ctx, comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ToggleCommentLike(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	comment, err := h.svc.Comments.ToggleLike(ctx, actor, id)
	if err != nil {
		return err
	}
	resp, err := h.projector.Comment(ctx, comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Comments.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}
