package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/api/metrics"
	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// ReviewHandler handles review submission and the admin moderation surface.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type reviewRequest struct {
	SpaceID   int64  `json:"space_id"`
	BookingID int64  `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

type rejectReviewRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// submitReviewResponse returns the created review together with the
// refreshed booking, whose review_id now comes from the server.
type submitReviewResponse struct {
	Review  *domain.Review  `json:"review"`
	Booking bookingResponse `json:"booking"`
}

// Submit handles POST /reviews. Eligibility is checked against the
// authoritative booking record before the submission leaves the gateway.
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, booking, err := h.service.Submit(c.Request().Context(), ports.ReviewInput{
		SpaceID:   req.SpaceID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsSubmittedTotal.Inc()
	return ok(c, http.StatusCreated, submitReviewResponse{
		Review:  review,
		Booking: newBookingResponse(booking),
	})
}

// List handles GET /admin/reviews with the moderation filters.
func (h *ReviewHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ReviewFilters{
		SpaceID:    int64(queryInt(c, "space_id")),
		IsApproved: queryBool(c, "is_approved"),
		IsFlagged:  queryBool(c, "is_flagged"),
		Rating:     queryInt(c, "rating"),
		Page:       queryInt(c, "page"),
		PerPage:    queryInt(c, "per_page"),
	})
	if err != nil {
		return err
	}
	return okPage(c, page.Items, page.Meta)
}

// Approve handles POST /admin/reviews/:id/approve.
func (h *ReviewHandler) Approve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	review, err := h.service.Approve(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, review)
}

// Reject handles POST /admin/reviews/:id/reject. The moderation reason is
// mandatory.
func (h *ReviewHandler) Reject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req rejectReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Reject(c.Request().Context(), id, req.Reason)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, review)
}

// Delete handles DELETE /admin/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return okMessage(c, http.StatusOK, "review deleted")
}
