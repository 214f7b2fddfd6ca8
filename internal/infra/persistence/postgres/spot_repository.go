package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spotter/internal/domain/entity"
	"spotter/internal/domain/repository"
	"spotter/internal/infra/persistence/model"
)

type spotRepository struct {
	store[model.SpotModel]
}

// NewSpotRepository creates a GORM-backed spot repository.
func NewSpotRepository(db *gorm.DB) repository.SpotRepository {
	return &spotRepository{store: newStore[model.SpotModel](db, "spot")}
}

func (r *spotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Spot, error) {
	m, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return m.ToEntity(), nil
}

func (r *spotRepository) List(ctx context.Context, page, pageSize int) ([]*entity.Spot, error) {
	ms, err := r.findPage(ctx, page, pageSize, "created_at DESC", nil)
	if err != nil {
		return nil, err
	}

	return toSpotEntities(ms), nil
}

func (r *spotRepository) ListByActive(ctx context.Context, active bool, page, pageSize int) ([]*entity.Spot, error) {
	ms, err := r.findPage(ctx, page, pageSize, "created_at DESC", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", active)
	})
	if err != nil {
		return nil, err
	}

	return toSpotEntities(ms), nil
}

func (r *spotRepository) Create(ctx context.Context, spot *entity.Spot) error {
	m := model.FromSpotEntity(spot)
	if err := r.create(ctx, m); err != nil {
		return err
	}

	spot.ID = m.ID
	spot.CreatedAt = m.CreatedAt
	spot.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *spotRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *spotRepository) CountByActive(ctx context.Context, active bool) (int64, error) {
	return r.count(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", active)
	})
}

func toSpotEntities(ms []*model.SpotModel) []*entity.Spot {
	spots := make([]*entity.Spot, 0, len(ms))
	for _, m := range ms {
		spots = append(spots, m.ToEntity())
	}

	return spots
}
