package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// Confirmation and completion are driven by the backend; cancellation is the
// only transition a user can initiate from this client.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// BookingSpace is the embedded space summary returned inside a booking record.
type BookingSpace struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// BookingUser is the embedded owner summary returned inside a booking record.
type BookingUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking is the core aggregate as served by the reservation backend.
// user_id and space_id are immutable after creation; status moves through the
// state machine above; cancellation_reason is set only on cancellation and
// review_id only once a review has been attached.
type Booking struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"user_id"`
	SpaceID             int64         `json:"space_id"`
	StartTime           time.Time     `json:"start_time"`
	EndTime             time.Time     `json:"end_time"`
	Status              BookingStatus `json:"status"`
	Purpose             string        `json:"purpose,omitempty"`
	EventTitle          string        `json:"event_title"`
	EventDescription    string        `json:"event_description,omitempty"`
	AttendeesCount      int           `json:"attendees_count"`
	SpecialRequirements string        `json:"special_requirements,omitempty"`
	TotalPrice          float64       `json:"total_price,omitempty"`
	CancellationReason  *string       `json:"cancellation_reason,omitempty"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`
	ReviewID            *int64        `json:"review_id,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	DeletedAt           *time.Time    `json:"deleted_at,omitempty"`
	Space               *BookingSpace `json:"space,omitempty"`
	User                *BookingUser  `json:"user,omitempty"`
}

// BookingActions is the set of operations currently permitted on a booking.
// It must be derived from the authoritative record on every use; status can
// change from outside the local session (backend confirmation or completion).
type BookingActions struct {
	CanEdit   bool `json:"can_edit"`
	CanCancel bool `json:"can_cancel"`
	CanReview bool `json:"can_review"`
	CanDelete bool `json:"can_delete"`
}

// Actions derives the permitted-action set from the booking's current status.
func (b *Booking) Actions() BookingActions {
	return BookingActions{
		CanEdit:   !b.Status.Terminal(),
		CanCancel: !b.Status.Terminal(),
		CanReview: b.CanReview(),
		CanDelete: true,
	}
}

// CanReview reports whether a review may be attached to the booking: the
// booking must be completed and must not already carry a review.
func (b *Booking) CanReview() bool {
	return b.Status == StatusCompleted && b.ReviewID == nil
}
