package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/core/ports"
)

// SessionCookie is the name of the browser cookie carrying the session token.
const SessionCookie = "salon_session"

// Context keys set by Session for downstream handlers.
const (
	CtxSessionID = "session_id"
	CtxSession   = "session"
	CtxRole      = "role"
)

// Session resolves the session cookie and injects the authenticated identity
// into the echo context. Requests without a valid session pass through
// anonymously; the role gate decides what anonymity may reach.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sid, sess, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				// Stale or tampered cookie: continue anonymous.
				return next(c)
			}

			c.Set(CtxSessionID, sid)
			c.Set(CtxSession, sess)
			c.Set(CtxRole, string(sess.Role))
			return next(c)
		}
	}
}
