package entity

import (
	"time"

	"github.com/google/uuid"
)

// Spot is a listable place record. It has no coupling to authentication;
// it is created and queried through the generic record store.
type Spot struct {
	ID          uuid.UUID
	Title       string
	Description string
	Latitude    float64
	Longitude   float64
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
