package router

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"atelier/internal/errors"
	"atelier/internal/handler"
	"atelier/internal/service"
)

// Session verifies the session token from the Authorization header or the session
// cookie and stores the resulting *model.Session on the context.
func Session(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.SessionContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.SessionCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.ValidateSession(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return httpError(errors.ErrUnauthenticated)
		},
	})
}

// RequireRole lets the request through only when the session holds role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.Authorize(handler.SessionFrom(c), role); err != nil {
				return httpError(err)
			}
			return next(c)
		}
	}
}

func httpError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
