package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spotter/internal/domain/entity"
	"spotter/internal/domain/repository"
	"spotter/internal/infra/persistence/model"
)

type userRepository struct {
	store[model.UserModel]
}

// NewUserRepository creates a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{store: newStore[model.UserModel](db, "user")}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return m.ToEntity(), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m, err := r.findFirst(ctx, "email = ?", email)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, repository.ErrUserNotFound
	}

	return m.ToEntity(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.FromUserEntity(user)
	if err := r.create(ctx, m); err != nil {
		return err
	}

	// Propagate database-generated values back to the entity.
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := model.FromUserEntity(user)
	if err := r.save(ctx, m); err != nil {
		return err
	}

	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *userRepository) SetRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token_hash", hash)
	if result.Error != nil {
		return translateError(result.Error, opUpdate, r.resource)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, opUpdate, r.resource)
	}

	return nil
}

func (r *userRepository) SwapRefreshTokenHash(ctx context.Context, userID uuid.UUID, oldHash, newHash string) (bool, error) {
	// Compare-and-swap on the stored hash. When two refresh requests race,
	// only one UPDATE matches; the loser observes zero affected rows.
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND refresh_token_hash = ?", userID, oldHash).
		Update("refresh_token_hash", newHash)
	if result.Error != nil {
		return false, translateError(result.Error, opUpdate, r.resource)
	}

	return result.RowsAffected > 0, nil
}
