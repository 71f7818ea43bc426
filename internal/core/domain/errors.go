package domain

import "errors"

// Validation errors, raised before any backend request is issued.
var (
	ErrReasonRequired   = errors.New("cancellation reason is required")
	ErrRatingRequired   = errors.New("a non-zero rating is required")
	ErrReviewNotAllowed = errors.New("booking is not eligible for review")
	ErrBookingFinal     = errors.New("booking is already cancelled or completed")
)

// Authorization errors: the backend rejected the session credential.
var ErrSessionExpired = errors.New("session expired")

// Business / lookup errors translated from backend responses.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSpaceNotFound   = errors.New("space not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrForbidden       = errors.New("access forbidden")
)

// ErrBackendUnavailable covers transport-level failures reaching the
// reservation backend (network, timeout, malformed response).
var ErrBackendUnavailable = errors.New("reservation service unavailable")

// APIError is a business rejection from the backend: the request was well
// formed and authorized, but the backend refused it. Message carries the
// server's text when present so it can be surfaced verbatim.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request rejected by reservation service"
}

