package model

import (
	"time"

	"github.com/google/uuid"

	"spotter/internal/domain/entity"
)

// SpotModel mirrors the 'spots' table.
type SpotModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Latitude    float64
	Longitude   float64
	ImageURL    string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpotModel) TableName() string {
	return "spots"
}

// ToEntity converts the persistence model to a domain entity.
func (m *SpotModel) ToEntity() *entity.Spot {
	return &entity.Spot{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromSpotEntity converts a domain entity to the persistence model.
func FromSpotEntity(s *entity.Spot) *SpotModel {
	return &SpotModel{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		ImageURL:    s.ImageURL,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
