package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// BookingService is the lifecycle controller: every user-initiated transition
// is checked against the booking's current status before a request is issued,
// and local state is only ever taken from the backend's success response.
type BookingService struct {
	bookings ports.BookingAPI
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingAPI, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, log: log}
}

func (s *BookingService) List(ctx context.Context, filters ports.BookingFilters) (*ports.BookingPage, error) {
	return s.bookings.List(ctx, filters)
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.Get(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, input ports.BookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("booking_id", booking.ID).Int64("space_id", booking.SpaceID).Msg("booking created")
	return booking, nil
}

// Update refuses locally when the booking is already in a terminal state. The
// check runs against a freshly fetched record, not a cached one: the backend
// may have confirmed or completed the booking since it was last seen.
func (s *BookingService) Update(ctx context.Context, id int64, input ports.BookingInput) (*domain.Booking, error) {
	current, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, domain.ErrBookingFinal
	}
	return s.bookings.Update(ctx, id, input)
}

// Cancel requires a non-empty reason before any network call and refuses
// bookings already cancelled or completed. On success the returned record is
// the backend's post-cancel state.
func (s *BookingService) Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	current, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, domain.ErrBookingFinal
	}

	cancelled, err := s.bookings.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("booking_id", id).Msg("booking cancelled")
	return cancelled, nil
}

// Delete soft-deletes a booking; any status is deletable.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("booking_id", id).Msg("booking deleted")
	return nil
}
