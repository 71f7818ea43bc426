package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// BookingAPI implements ports.BookingAPI against the backend's booking
// endpoints. It performs no lifecycle validation of its own; that is the
// booking service's responsibility before any call lands here.
type BookingAPI struct {
	client *Client
}

func NewBookingAPI(client *Client) *BookingAPI {
	return &BookingAPI{client: client}
}

type bookingPayload struct {
	SpaceID             int64  `json:"space_id"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	EventTitle          string `json:"event_title"`
	EventDescription    string `json:"event_description,omitempty"`
	Purpose             string `json:"purpose,omitempty"`
	AttendeesCount      int    `json:"attendees_count"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

type cancelPayload struct {
	CancellationReason string `json:"cancellation_reason"`
}

func newBookingPayload(input ports.BookingInput) bookingPayload {
	return bookingPayload{
		SpaceID:             input.SpaceID,
		StartTime:           input.StartTime.Format(time.RFC3339),
		EndTime:             input.EndTime.Format(time.RFC3339),
		EventTitle:          input.EventTitle,
		EventDescription:    input.EventDescription,
		Purpose:             input.Purpose,
		AttendeesCount:      input.AttendeesCount,
		SpecialRequirements: input.SpecialRequirements,
	}
}

func (b *BookingAPI) List(ctx context.Context, filters ports.BookingFilters) (*ports.BookingPage, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.SpaceID > 0 {
		query.Set("space_id", strconv.FormatInt(filters.SpaceID, 10))
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(filters.PerPage))
	}

	env, err := b.client.doEnvelope(ctx, http.MethodGet, "bookings", query, nil, nil)
	if err != nil {
		return nil, err
	}
	items, meta, err := decodePage[domain.Booking](env)
	if err != nil {
		return nil, err
	}
	return &ports.BookingPage{Items: items, Meta: meta}, nil
}

func (b *BookingAPI) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	if err := b.client.do(ctx, http.MethodGet, bookingPath(id), nil, nil, &booking); err != nil {
		return nil, notFoundAs(err, domain.ErrBookingNotFound)
	}
	return &booking, nil
}

func (b *BookingAPI) Create(ctx context.Context, input ports.BookingInput) (*domain.Booking, error) {
	var booking domain.Booking
	if err := b.client.do(ctx, http.MethodPost, "bookings", nil, newBookingPayload(input), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingAPI) Update(ctx context.Context, id int64, input ports.BookingInput) (*domain.Booking, error) {
	var booking domain.Booking
	if err := b.client.do(ctx, http.MethodPut, bookingPath(id), nil, newBookingPayload(input), &booking); err != nil {
		return nil, notFoundAs(err, domain.ErrBookingNotFound)
	}
	return &booking, nil
}

func (b *BookingAPI) Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	var booking domain.Booking
	payload := cancelPayload{CancellationReason: reason}
	if err := b.client.do(ctx, http.MethodPost, bookingPath(id)+"/cancel", nil, payload, &booking); err != nil {
		return nil, notFoundAs(err, domain.ErrBookingNotFound)
	}
	return &booking, nil
}

func (b *BookingAPI) Delete(ctx context.Context, id int64) error {
	if err := b.client.do(ctx, http.MethodDelete, bookingPath(id), nil, nil, nil); err != nil {
		return notFoundAs(err, domain.ErrBookingNotFound)
	}
	return nil
}

func bookingPath(id int64) string {
	return fmt.Sprintf("bookings/%d", id)
}
