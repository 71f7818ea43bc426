package domain

import "time"

// Review is a space review attached to a completed booking.
type Review struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	SpaceID    int64     `json:"space_id"`
	BookingID  int64     `json:"booking_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	IsApproved bool      `json:"is_approved"`
	IsFlagged  bool      `json:"is_flagged"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	User       *User     `json:"user,omitempty"`
	Space      *Space    `json:"space,omitempty"`
}
