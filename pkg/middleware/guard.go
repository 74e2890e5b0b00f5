package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuth sends signed-out browsers back to the sign-in page. Must run
// after Session.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := From(c)
			if s == nil || !s.Read().Authenticated {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
