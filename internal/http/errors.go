package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

// ErrorHandler renders every error as {"type", "message"}. Causes of 5xx
// errors are logged and never sent to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := render(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		zap.L().Warn("error response not written", zap.Error(err))
	}
}

func render(err error) (int, dto.ErrorResponse) {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.StatusCode, dto.ErrorResponse{Type: string(appErr.Kind), Message: appErr.Message}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		kind := apperrors.KindValidation
		switch {
		case httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed:
			kind = apperrors.KindNotFound
		case httpErr.Code == http.StatusUnauthorized:
			kind = apperrors.KindAuthentication
		case httpErr.Code >= http.StatusInternalServerError:
			kind = apperrors.KindUnexpected
		}
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = m
		}
		return httpErr.Code, dto.ErrorResponse{Type: string(kind), Message: message}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{Type: string(apperrors.KindUnexpected), Message: "unexpected error"}
}
