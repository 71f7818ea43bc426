package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	NewHTTPErrorHandler(discardLogger)(err, c)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestErrorHandler_SessionExpiredRedirectsToLogin(t *testing.T) {
	rec := handleError(t, domain.ErrSessionExpired)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.LoginRoute {
		t.Errorf("redirect target: %q", loc)
	}
}

func TestErrorHandler_WrappedSessionExpiredStillRedirects(t *testing.T) {
	// The http client wraps transport errors; errors.Is must see through.
	rec := handleError(t, fmt.Errorf("request failed: %w", domain.ErrSessionExpired))
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestErrorHandler_LifecycleErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrReasonRequired, http.StatusUnprocessableEntity},
		{domain.ErrRatingRequired, http.StatusUnprocessableEntity},
		{domain.ErrReviewNotAllowed, http.StatusUnprocessableEntity},
		{domain.ErrBookingFinal, http.StatusUnprocessableEntity},
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrSpaceNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrBackendUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		rec := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		resp := decodeError(t, rec)
		if resp["success"] != false {
			t.Errorf("%v: success flag must be false", tc.err)
		}
	}
}

func TestErrorHandler_BackendRejectionPassesMessageAndFields(t *testing.T) {
	rec := handleError(t, &domain.APIError{
		Status:  http.StatusUnprocessableEntity,
		Message: "The space is not available for the selected time.",
		Fields:  map[string][]string{"start_time": {"conflicts with an existing booking"}},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp["error"] != "The space is not available for the selected time." {
		t.Errorf("error message: %v", resp["error"])
	}
	fields, _ := resp["errors"].(map[string]any)
	if len(fields) != 1 {
		t.Errorf("field errors: %+v", fields)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp["error"] != "internal server error" {
		t.Errorf("internal detail leaked: %v", resp["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
