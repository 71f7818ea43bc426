package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub booking API
// ---------------------------------------------------------------------------

type stubBookingAPI struct {
	bookings map[int64]*domain.Booking

	cancelCalls int
	lastReason  string
	updateCalls int
	cancelErr   error
}

func newStubBookingAPI(bookings ...*domain.Booking) *stubBookingAPI {
	s := &stubBookingAPI{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		clone := *b
		s.bookings[b.ID] = &clone
	}
	return s
}

func (s *stubBookingAPI) List(_ context.Context, _ ports.BookingFilters) (*ports.BookingPage, error) {
	var items []domain.Booking
	for _, b := range s.bookings {
		items = append(items, *b)
	}
	return &ports.BookingPage{Items: items, Meta: ports.PageMeta{Total: len(items)}}, nil
}

func (s *stubBookingAPI) Get(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *stubBookingAPI) Create(_ context.Context, input ports.BookingInput) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:        int64(len(s.bookings) + 1),
		SpaceID:   input.SpaceID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
	s.bookings[b.ID] = b
	clone := *b
	return &clone, nil
}

func (s *stubBookingAPI) Update(_ context.Context, id int64, input ports.BookingInput) (*domain.Booking, error) {
	s.updateCalls++
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.EventTitle = input.EventTitle
	clone := *b
	return &clone, nil
}

func (s *stubBookingAPI) Cancel(_ context.Context, id int64, reason string) (*domain.Booking, error) {
	s.cancelCalls++
	s.lastReason = reason
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	now := time.Now()
	b.CancelledAt = &now
	clone := *b
	return &clone, nil
}

func (s *stubBookingAPI) Delete(_ context.Context, id int64) error {
	if _, ok := s.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

var discardLogger = zerolog.Nop()

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{ID: id, SpaceID: 3, Status: domain.StatusPending}
}

// ---------------------------------------------------------------------------
// Cancel
// ---------------------------------------------------------------------------

func TestBookingService_Cancel_Success(t *testing.T) {
	api := newStubBookingAPI(pendingBooking(1))
	svc := NewBookingService(api, discardLogger)

	cancelled, err := svc.Cancel(context.Background(), 1, "schedule conflict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Errorf("expected status cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != "schedule conflict" {
		t.Errorf("cancellation reason not carried through: %+v", cancelled.CancellationReason)
	}
	if api.lastReason != "schedule conflict" {
		t.Errorf("reason sent to backend: %q", api.lastReason)
	}
}

func TestBookingService_Cancel_EmptyReason(t *testing.T) {
	api := newStubBookingAPI(pendingBooking(1))
	svc := NewBookingService(api, discardLogger)

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := svc.Cancel(context.Background(), 1, reason)
		if !errors.Is(err, domain.ErrReasonRequired) {
			t.Errorf("reason %q: expected ErrReasonRequired, got %v", reason, err)
		}
	}
	if api.cancelCalls != 0 {
		t.Errorf("backend must not be called without a reason, got %d calls", api.cancelCalls)
	}
}

func TestBookingService_Cancel_TerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		api := newStubBookingAPI(&domain.Booking{ID: 1, Status: status})
		svc := NewBookingService(api, discardLogger)

		_, err := svc.Cancel(context.Background(), 1, "too late")
		if !errors.Is(err, domain.ErrBookingFinal) {
			t.Errorf("%s: expected ErrBookingFinal, got %v", status, err)
		}
		if api.cancelCalls != 0 {
			t.Errorf("%s: backend must not be called for terminal booking", status)
		}
	}
}

func TestBookingService_Cancel_ConfirmedIsCancellable(t *testing.T) {
	api := newStubBookingAPI(&domain.Booking{ID: 1, Status: domain.StatusConfirmed})
	svc := NewBookingService(api, discardLogger)

	if _, err := svc.Cancel(context.Background(), 1, "plans changed"); err != nil {
		t.Fatalf("confirmed booking must be cancellable: %v", err)
	}
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc := NewBookingService(newStubBookingAPI(), discardLogger)

	_, err := svc.Cancel(context.Background(), 42, "whatever")
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestBookingService_Update_TerminalStatus(t *testing.T) {
	api := newStubBookingAPI(&domain.Booking{ID: 1, Status: domain.StatusCompleted})
	svc := NewBookingService(api, discardLogger)

	_, err := svc.Update(context.Background(), 1, ports.BookingInput{EventTitle: "new title"})
	if !errors.Is(err, domain.ErrBookingFinal) {
		t.Fatalf("expected ErrBookingFinal, got %v", err)
	}
	if api.updateCalls != 0 {
		t.Error("backend must not be called for terminal booking")
	}
}

func TestBookingService_Update_Active(t *testing.T) {
	api := newStubBookingAPI(pendingBooking(1))
	svc := NewBookingService(api, discardLogger)

	updated, err := svc.Update(context.Background(), 1, ports.BookingInput{EventTitle: "retro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EventTitle != "retro" {
		t.Errorf("expected updated title, got %q", updated.EventTitle)
	}
}
