package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	middleware "digiwork-hub.com/digiwork-hub/internal/http/middlewares"
)

func (h *Handler) UploadImage(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	upload, closeFile, err := formFile(c, "image")
	if err != nil {
		return err
	}
	defer closeFile()

	ctx := c.Request().Context()
	if _, err := h.svc.Users.UploadAvatar(ctx, actor, upload); err != nil {
		return err
	}
	resp, err := h.projector.Profile(ctx, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ChangeUserName(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	var req dto.ChangeNameRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.svc.Users.ChangeName(c.Request().Context(), actor, req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) ChangeUserRole(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	var req dto.ChangeRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.svc.Users.ChangeRole(c.Request().Context(), actor, req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) ChangeUserPassword(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.svc.Users.ChangePassword(c.Request().Context(), actor, req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) UpdateNotificationToken(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	var req dto.NotificationTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.svc.Users.UpdateNotificationToken(c.Request().Context(), actor, req.Token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) SearchUsers(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	users, err := h.svc.Users.Search(c.Request().Context(), actor, c.QueryParam("query"))
	if err != nil {
		return err
	}

	out := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserSummary{ID: u.ID, Name: u.Name, Image: u.ImagePath})
	}
	return c.JSON(http.StatusOK, out)
}

// GetUser answers for deleted users too, with the unknown user placeholder.
func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	resp, err := h.projector.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	if err := h.svc.Users.DeleteAccount(c.Request().Context(), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}
