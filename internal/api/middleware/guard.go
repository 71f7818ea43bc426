package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/api/metrics"
	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// Guard enforces the route-entry policy for the given requirement. The
// decision is purely local: it reads the session snapshot injected by the
// Session middleware and never touches the network. Denial redirects to the
// policy's target route.
func Guard(requirement domain.Requirement) echo.MiddlewareFunc {
	label := requirementLabel(requirement)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := domain.Evaluate(SessionFromContext(c), requirement)
			if !decision.Allowed {
				metrics.GuardDenialsTotal.WithLabelValues(label).Inc()
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}
			return next(c)
		}
	}
}

func requirementLabel(requirement domain.Requirement) string {
	switch requirement {
	case domain.RequireGuest:
		return "guest"
	case domain.RequireAuthenticated:
		return "authenticated"
	case domain.RequireAdmin:
		return "admin"
	case domain.RequireManager:
		return "manager"
	}
	return "unknown"
}
