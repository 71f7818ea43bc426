package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/api/middleware"
	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// ctxSession extracts the session snapshot injected by the session middleware
// and performs a fast-fail check before any service call: guarded routes must
// never reach a handler without an authenticated session.
func ctxSession(c echo.Context) (domain.Session, string, error) {
	session := middleware.SessionFromContext(c)
	if !session.IsAuthenticated() {
		return domain.Anonymous, "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, middleware.SessionID(c), nil
}

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, returning 0 when the
// parameter is absent or malformed.
func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))
	return n
}

// queryBool parses an optional boolean query parameter, returning nil when
// the parameter is absent or malformed.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}
