package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/metrics"
	"github.com/aurasalon/salon-system/internal/core/domain"
)

// RequireRole gates an operation on the session role. A missing identity or a
// role mismatch is refused with a silent redirect to the public home view;
// the gated handler never runs, so the refusal is a no-op on stored state.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role != string(required) {
				metrics.AuthRedirectsTotal.WithLabelValues(string(required)).Inc()
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
