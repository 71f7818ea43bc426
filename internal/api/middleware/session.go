package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

const (
	sessionContextKey = "session"
	sidContextKey     = "session_id"
)

// Session resolves the request's session snapshot once, before any guard or
// handler runs, and injects it into the echo context. For authenticated
// sessions the request context additionally carries the backend credential so
// every downstream backend call is sent on this session's behalf.
func Session(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(cookieName); err == nil {
				sid = cookie.Value
			}

			session := sessions.Resolve(c.Request().Context(), sid)
			c.Set(sessionContextKey, session)
			c.Set(sidContextKey, sid)

			if session.IsAuthenticated() {
				req := c.Request()
				c.SetRequest(req.WithContext(ports.WithCredential(req.Context(), sid, session.Token)))
			}

			return next(c)
		}
	}
}

// SessionFromContext returns the snapshot injected by Session, or the
// anonymous session when the middleware did not run.
func SessionFromContext(c echo.Context) domain.Session {
	session, _ := c.Get(sessionContextKey).(domain.Session)
	return session
}

// SessionID returns the request's session ID, or "".
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sidContextKey).(string)
	return sid
}
