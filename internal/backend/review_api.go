package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// ReviewAPI implements ports.ReviewAPI against the backend's review and
// moderation endpoints.
type ReviewAPI struct {
	client *Client
}

func NewReviewAPI(client *Client) *ReviewAPI {
	return &ReviewAPI{client: client}
}

// reviewPayload omits comment entirely when empty; the backend distinguishes
// an absent comment from an empty one.
type reviewPayload struct {
	SpaceID   int64  `json:"space_id"`
	BookingID int64  `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

func (r *ReviewAPI) List(ctx context.Context, filters ports.ReviewFilters) (*ports.ReviewPage, error) {
	query := url.Values{}
	if filters.SpaceID > 0 {
		query.Set("space_id", strconv.FormatInt(filters.SpaceID, 10))
	}
	if filters.IsApproved != nil {
		query.Set("is_approved", strconv.FormatBool(*filters.IsApproved))
	}
	if filters.IsFlagged != nil {
		query.Set("is_flagged", strconv.FormatBool(*filters.IsFlagged))
	}
	if filters.Rating > 0 {
		query.Set("rating", strconv.Itoa(filters.Rating))
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(filters.PerPage))
	}

	env, err := r.client.doEnvelope(ctx, http.MethodGet, "reviews", query, nil, nil)
	if err != nil {
		return nil, err
	}
	items, meta, err := decodePage[domain.Review](env)
	if err != nil {
		return nil, err
	}
	return &ports.ReviewPage{Items: items, Meta: meta}, nil
}

func (r *ReviewAPI) Create(ctx context.Context, input ports.ReviewInput) (*domain.Review, error) {
	var review domain.Review
	payload := reviewPayload{
		SpaceID:   input.SpaceID,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := r.client.do(ctx, http.MethodPost, "reviews", nil, payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewAPI) Approve(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	if err := r.client.do(ctx, http.MethodPost, reviewPath(id)+"/approve", nil, struct{}{}, &review); err != nil {
		return nil, notFoundAs(err, domain.ErrReviewNotFound)
	}
	return &review, nil
}

func (r *ReviewAPI) Reject(ctx context.Context, id int64, reason string) (*domain.Review, error) {
	var review domain.Review
	if err := r.client.do(ctx, http.MethodPost, reviewPath(id)+"/reject", nil, rejectPayload{Reason: reason}, &review); err != nil {
		return nil, notFoundAs(err, domain.ErrReviewNotFound)
	}
	return &review, nil
}

func (r *ReviewAPI) Delete(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, reviewPath(id), nil, nil, nil); err != nil {
		return notFoundAs(err, domain.ErrReviewNotFound)
	}
	return nil
}

func reviewPath(id int64) string {
	return fmt.Sprintf("reviews/%d", id)
}
