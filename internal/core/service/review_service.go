package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// ReviewService enforces the review-eligibility gate in front of the backend
// and exposes the admin moderation operations.
type ReviewService struct {
	reviews  ports.ReviewAPI
	bookings ports.BookingAPI
	log      zerolog.Logger
}

func NewReviewService(reviews ports.ReviewAPI, bookings ports.BookingAPI, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, log: log}
}

func (s *ReviewService) List(ctx context.Context, filters ports.ReviewFilters) (*ports.ReviewPage, error) {
	return s.reviews.List(ctx, filters)
}

// Submit validates the rating locally, checks eligibility against the
// authoritative booking record, posts the review, then re-fetches the booking
// so review_id reflects the server's state rather than an assumption. The
// re-fetch failing does not fail the submission; the review exists either way.
func (s *ReviewService) Submit(ctx context.Context, input ports.ReviewInput) (*domain.Review, *domain.Booking, error) {
	if input.Rating <= 0 {
		return nil, nil, domain.ErrRatingRequired
	}

	booking, err := s.bookings.Get(ctx, input.BookingID)
	if err != nil {
		return nil, nil, err
	}
	if !booking.CanReview() {
		return nil, nil, domain.ErrReviewNotAllowed
	}
	if input.SpaceID == 0 {
		input.SpaceID = booking.SpaceID
	}

	review, err := s.reviews.Create(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info().Int64("booking_id", input.BookingID).Int("rating", input.Rating).Msg("review submitted")

	refreshed, err := s.bookings.Get(ctx, input.BookingID)
	if err != nil {
		s.log.Warn().Err(err).Int64("booking_id", input.BookingID).Msg("post-review refresh failed")
		return review, booking, nil
	}
	return review, refreshed, nil
}

func (s *ReviewService) Approve(ctx context.Context, id int64) (*domain.Review, error) {
	review, err := s.reviews.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("review_id", id).Msg("review approved")
	return review, nil
}

// Reject requires a non-empty moderation reason before any network call.
func (s *ReviewService) Reject(ctx context.Context, id int64, reason string) (*domain.Review, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}
	review, err := s.reviews.Reject(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("review_id", id).Msg("review rejected")
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("review_id", id).Msg("review deleted")
	return nil
}
