package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/api/metrics"
	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type bookingRequest struct {
	SpaceID             int64     `json:"space_id" validate:"required"`
	StartTime           time.Time `json:"start_time" validate:"required"`
	EndTime             time.Time `json:"end_time" validate:"required"`
	EventTitle          string    `json:"event_title" validate:"required"`
	EventDescription    string    `json:"event_description"`
	Purpose             string    `json:"purpose"`
	AttendeesCount      int       `json:"attendees_count" validate:"required,gte=1"`
	SpecialRequirements string    `json:"special_requirements"`
}

type cancelRequest struct {
	CancellationReason string `json:"cancellation_reason" validate:"required"`
}

// bookingResponse pairs the record with its permitted-action set, derived
// from the status the backend just returned rather than a cached one.
type bookingResponse struct {
	domain.Booking
	Actions domain.BookingActions `json:"actions"`
}

func newBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{Booking: *b, Actions: b.Actions()}
}

func (r bookingRequest) input() ports.BookingInput {
	return ports.BookingInput{
		SpaceID:             r.SpaceID,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		EventTitle:          r.EventTitle,
		EventDescription:    r.EventDescription,
		Purpose:             r.Purpose,
		AttendeesCount:      r.AttendeesCount,
		SpecialRequirements: r.SpecialRequirements,
	}
}

// List handles GET /bookings.
func (h *BookingHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.BookingFilters{
		Status:  c.QueryParam("status"),
		SpaceID: int64(queryInt(c, "space_id")),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	})
	if err != nil {
		return err
	}

	items := make([]bookingResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, newBookingResponse(&page.Items[i]))
	}
	return okPage(c, items, page.Meta)
}

// Get handles GET /bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	booking, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newBookingResponse(booking))
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return ok(c, http.StatusCreated, newBookingResponse(booking))
}

// Update handles PUT /bookings/:id.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newBookingResponse(booking))
}

// Cancel handles POST /bookings/:id/cancel. The reason is mandatory; without
// it no request leaves the gateway.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Cancel(c.Request().Context(), id, req.CancellationReason)
	if err != nil {
		return err
	}

	metrics.BookingsCancelledTotal.Inc()
	return ok(c, http.StatusOK, newBookingResponse(booking))
}

// Delete handles DELETE /bookings/:id (soft delete).
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return okMessage(c, http.StatusOK, "booking deleted")
}
