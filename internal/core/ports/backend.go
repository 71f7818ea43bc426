package ports

import (
	"context"
	"time"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// The interfaces in this file describe the remote reservation backend. The
// credential for authenticated calls travels in the context; the outbound
// transport attaches it as a bearer header and reacts to rejections.

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// RegisterInput carries a registration attempt. PasswordConfirmation must
// match Password; the gateway checks this before sending.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Phone                string
	Department           string
}

// AuthSession is the backend's response to a successful login, registration
// or token refresh.
type AuthSession struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresIn int64       `json:"expires_in"`
	User      domain.User `json:"user"`
}

// AuthAPI is the backend's authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthSession, error)
	Register(ctx context.Context, input RegisterInput) (*AuthSession, error)
	// Logout is best-effort server-side revocation; the gateway ignores its
	// failure after local state is cleared.
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (*AuthSession, error)
	Me(ctx context.Context) (*domain.User, error)
}

// BookingInput carries the caller-supplied booking fields for create and
// update. Time-window ordering and overlap are validated by the backend, not
// here.
type BookingInput struct {
	SpaceID             int64
	StartTime           time.Time
	EndTime             time.Time
	EventTitle          string
	EventDescription    string
	Purpose             string
	AttendeesCount      int
	SpecialRequirements string
}

// BookingFilters carries list-endpoint query parameters.
type BookingFilters struct {
	Status  string
	SpaceID int64
	Page    int
	PerPage int
}

// BookingAPI is the backend's booking surface.
type BookingAPI interface {
	List(ctx context.Context, filters BookingFilters) (*BookingPage, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, input BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int64, input BookingInput) (*domain.Booking, error)
	// Cancel posts the cancellation with its mandatory reason and returns the
	// authoritative post-cancel record.
	Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// SpaceInput carries the admin-supplied space fields for create and update.
type SpaceInput struct {
	Name         string
	Description  string
	Type         domain.SpaceType
	Capacity     int
	PricePerHour float64
	Location     string
	Floor        string
	Amenities    []string
	ImageURL     string
	IsAvailable  bool
	Rules        string
}

// SpaceFilters carries the space browse filters.
type SpaceFilters struct {
	Type        string
	IsAvailable *bool
	MinCapacity int
	MaxPrice    float64
	Search      string
	Page        int
	PerPage     int
}

// SpaceAPI is the backend's space surface.
type SpaceAPI interface {
	List(ctx context.Context, filters SpaceFilters) (*SpacePage, error)
	Get(ctx context.Context, id int64) (*domain.Space, error)
	Create(ctx context.Context, input SpaceInput) (*domain.Space, error)
	Update(ctx context.Context, id int64, input SpaceInput) (*domain.Space, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewInput carries a review submission. Comment is optional and must be
// omitted from the wire payload when empty.
type ReviewInput struct {
	SpaceID   int64
	BookingID int64
	Rating    int
	Comment   string
}

// ReviewFilters carries the review list filters used by moderation.
type ReviewFilters struct {
	SpaceID    int64
	IsApproved *bool
	IsFlagged  *bool
	Rating     int
	Page       int
	PerPage    int
}

// ReviewAPI is the backend's review surface, including moderation.
type ReviewAPI interface {
	List(ctx context.Context, filters ReviewFilters) (*ReviewPage, error)
	Create(ctx context.Context, input ReviewInput) (*domain.Review, error)
	Approve(ctx context.Context, id int64) (*domain.Review, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// UserInput carries admin user-management fields. Zero-valued optional fields
// are omitted from update payloads.
type UserInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Department string
	RoleID     int64
	IsActive   *bool
}

// UserFilters carries the admin user list filters.
type UserFilters struct {
	Search   string
	IsActive *bool
	Role     string
	Page     int
	PerPage  int
}

// UserAPI is the backend's admin user-management surface.
type UserAPI interface {
	List(ctx context.Context, filters UserFilters) (*UserPage, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Roles(ctx context.Context) ([]domain.Role, error)
}
