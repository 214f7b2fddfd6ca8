package model

import (
	"time"

	"github.com/google/uuid"

	"spotter/internal/domain/entity"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). PasswordHash and RefreshTokenHash are nullable:
// the former for Google-only accounts, the latter for logged-out users.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	Username         string    `gorm:"type:varchar(30);unique;not null"`
	PasswordHash     *string   `gorm:"type:varchar(255)"`
	Role             string    `gorm:"type:varchar(20);not null;default:'USER'"`
	RefreshTokenHash *string   `gorm:"type:varchar(64)"`
	ImageURL         string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:               m.ID,
		Email:            m.Email,
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		Role:             entity.Role(m.Role),
		RefreshTokenHash: m.RefreshTokenHash,
		ImageURL:         m.ImageURL,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromUserEntity converts a domain entity to the persistence model.
func FromUserEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		Role:             u.Role.String(),
		RefreshTokenHash: u.RefreshTokenHash,
		ImageURL:         u.ImageURL,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
