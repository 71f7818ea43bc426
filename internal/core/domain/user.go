package domain

import "time"

// Role names as served by the reservation backend. IsAdmin is an orthogonal
// flag on the user record and implies every capability regardless of role.
const (
	RoleUser    = "Usuario"
	RoleManager = "Gestor"
	RoleAdmin   = "Admin"
)

// User is the full profile record returned by the backend.
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	Department      string     `json:"department,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsAdmin         bool       `json:"is_admin"`
	Role            string     `json:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Role is a named role record from the backend's role catalogue.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
