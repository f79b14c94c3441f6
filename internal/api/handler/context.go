package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/middleware"
	"github.com/aurasalon/salon-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware. The
// role gate runs before any handler that calls this, so a missing session
// here means middleware wiring is broken rather than a user mistake — fail
// with 401, not a redirect.
func ctxSession(c echo.Context) (sid string, sess *domain.Session, err error) {
	sess, _ = c.Get(middleware.CtxSession).(*domain.Session)
	if sess == nil {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	sid, _ = c.Get(middleware.CtxSessionID).(string)
	return sid, sess, nil
}
