package repository

import (
	"context"

	"spotter/internal/domain/entity"

	"github.com/google/uuid"
)

// SpotRepository defines the operations for spot persistence.
type SpotRepository interface {
	// FindByID retrieves a single spot by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Spot, error)

	// List retrieves a page of spots, newest first. page is 1-based.
	List(ctx context.Context, page, pageSize int) ([]*entity.Spot, error)

	// ListByActive retrieves a page of spots filtered on the active flag.
	ListByActive(ctx context.Context, active bool, page, pageSize int) ([]*entity.Spot, error)

	// Create persists a new spot.
	Create(ctx context.Context, spot *entity.Spot) error

	// Count returns the total number of spots.
	Count(ctx context.Context) (int64, error)

	// CountByActive returns the number of spots with the given active flag.
	CountByActive(ctx context.Context, active bool) (int64, error)
}
