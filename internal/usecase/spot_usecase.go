package usecase

import (
	"context"

	"spotter/internal/domain/entity"
)

// CreateSpotInput is the payload for publishing a new spot.
type CreateSpotInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

// SpotPage is one page of spots plus the total matching count.
type SpotPage struct {
	Spots []*entity.Spot
	Total int64
}

// SpotUsecase defines the spot catalogue operations.
type SpotUsecase interface {
	// ListActive returns a page of active spots, newest first. An empty
	// catalogue is reported as an error rather than an empty page.
	ListActive(ctx context.Context, page, pageSize int) (*SpotPage, error)

	// ListNonActive returns a page of deactivated spots.
	ListNonActive(ctx context.Context, page, pageSize int) (*SpotPage, error)

	// Create publishes a new spot.
	Create(ctx context.Context, input CreateSpotInput) (*entity.Spot, error)
}
