package domain

import "time"

// SpaceType enumerates the bookable space categories served by the backend.
type SpaceType string

const (
	SpaceMeetingRoom SpaceType = "sala_reuniones"
	SpaceOffice      SpaceType = "oficina"
	SpaceAuditorium  SpaceType = "auditorio"
	SpaceLab         SpaceType = "laboratorio"
	SpaceCoworking   SpaceType = "espacio_coworking"
	SpaceOther       SpaceType = "otro"
)

// Space is a bookable space record.
type Space struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Type         SpaceType  `json:"type"`
	Capacity     int        `json:"capacity"`
	PricePerHour float64    `json:"price_per_hour"`
	Location     string     `json:"location"`
	Floor        string     `json:"floor,omitempty"`
	Amenities    []string   `json:"amenities,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	IsAvailable  bool       `json:"is_available"`
	Rules        string     `json:"rules,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
