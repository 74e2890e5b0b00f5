package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vitisense/pkg/session"
)

const (
	CookieName = "vitisense_session"
	ctxKey     = "session"
)

// Session attaches the browser's session to the context, creating one (and
// setting the cookie) when the request carries no known id.
func Session(store *session.Store, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var s *session.Session
			if ck, err := c.Cookie(CookieName); err == nil {
				s, _ = store.Get(ck.Value)
			}
			if s == nil {
				s = store.Create()
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(ctxKey, s)
			return next(c)
		}
	}
}

// From returns the session attached by Session.
func From(c echo.Context) *session.Session {
	s, _ := c.Get(ctxKey).(*session.Session)
	return s
}
