package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// errorResponse is the canonical error envelope for all gateway errors.
type errorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Fields  map[string][]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Redirects to the login route when the backend rejected the session
//     credential, regardless of which route was being served.
//   - Maps local validation and lifecycle errors to their status codes.
//   - Surfaces backend business rejections with the server's message text.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// The session has already been invalidated by the outbound transport;
		// all that remains is sending the caller back to login.
		if errors.Is(err, domain.ErrSessionExpired) {
			_ = c.Redirect(http.StatusFound, domain.LoginRoute)
			return
		}

		code, msg, fields := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg, Fields: fields})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, map[string][]string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Validation and lifecycle preconditions caught before any backend call.
	switch {
	case errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrRatingRequired),
		errors.Is(err, domain.ErrReviewNotAllowed),
		errors.Is(err, domain.ErrBookingFinal):
		return http.StatusUnprocessableEntity, err.Error(), nil
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", nil
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway, "reservation service unavailable", nil
	}

	// Business rejection from the backend: pass the server's message through,
	// falling back to a generic one when it sent none.
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Error(), apiErr.Fields
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
