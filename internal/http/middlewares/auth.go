package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

const actorKey = "actor"

type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (auth.Actor, error)
}

// bearer accepts "Bearer <token>" as well as a bare token.
func bearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// Authenticate resolves the request's token to an actor before any handler
// runs. Requests without a valid token stop here with 401.
func Authenticate(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return apperrors.ErrUnauthenticated
			}

			actor, err := a.Authenticate(c.Request().Context(), raw)
			if err != nil {
				return err
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by Authenticate.
func ActorFrom(c echo.Context) (auth.Actor, error) {
	actor, ok := c.Get(actorKey).(auth.Actor)
	if !ok {
		return auth.Actor{}, apperrors.ErrUnauthenticated
	}
	return actor, nil
}
