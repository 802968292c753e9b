package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	model "digiwork-hub.com/digiwork-hub/internal/models"
)

func authResponse(user *model.User, token string) dto.AuthResponse {
	return dto.AuthResponse{
		Message: "Success",
		Token:   token,
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Image:   user.ImagePath,
	}
}

func (h *Handler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, token, err := h.svc.Auth.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse(user, token))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, token, err := h.svc.Auth.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse(user, token))
}

func (h *Handler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.svc.Auth.ForgotPassword(c.Request().Context(), req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.svc.Auth.ResetPassword(c.Request().Context(), req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}
