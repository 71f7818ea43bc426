package ports

import "github.com/OscarMG4/space-booking-app/internal/core/domain"

// PageMeta mirrors the pagination metadata the backend attaches to list
// responses. It is passed through to gateway callers unchanged.
type PageMeta struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// BookingPage is one page of bookings plus its metadata.
type BookingPage struct {
	Items []domain.Booking `json:"data"`
	Meta  PageMeta         `json:"meta"`
}

// SpacePage is one page of spaces plus its metadata.
type SpacePage struct {
	Items []domain.Space `json:"data"`
	Meta  PageMeta       `json:"meta"`
}

// ReviewPage is one page of reviews plus its metadata.
type ReviewPage struct {
	Items []domain.Review `json:"data"`
	Meta  PageMeta        `json:"meta"`
}

// UserPage is one page of users plus its metadata.
type UserPage struct {
	Items []domain.User `json:"data"`
	Meta  PageMeta      `json:"meta"`
}
