package ports

import (
	"context"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// BookingService owns the booking lifecycle rules on top of the backend API:
// it validates every user-initiated transition against the current status
// before any network call is made.
type BookingService interface {
	List(ctx context.Context, filters BookingFilters) (*BookingPage, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, input BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int64, input BookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewService enforces the review-eligibility gate before submission and
// exposes the moderation operations.
type ReviewService interface {
	List(ctx context.Context, filters ReviewFilters) (*ReviewPage, error)
	// Submit checks eligibility against the authoritative booking record,
	// posts the review, then re-fetches the booking so review_id reflects the
	// server's state rather than an assumption.
	Submit(ctx context.Context, input ReviewInput) (*domain.Review, *domain.Booking, error)
	Approve(ctx context.Context, id int64) (*domain.Review, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// SpaceService is the pass-through space surface.
type SpaceService interface {
	List(ctx context.Context, filters SpaceFilters) (*SpacePage, error)
	Get(ctx context.Context, id int64) (*domain.Space, error)
	Create(ctx context.Context, input SpaceInput) (*domain.Space, error)
	Update(ctx context.Context, id int64, input SpaceInput) (*domain.Space, error)
	Delete(ctx context.Context, id int64) error
}

// UserService is the pass-through admin user-management surface.
type UserService interface {
	List(ctx context.Context, filters UserFilters) (*UserPage, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Roles(ctx context.Context) ([]domain.Role, error)
}
