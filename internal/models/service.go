package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index" json:"provider_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	Availabilities []AvailabilityRule `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE;" json:"availabilities"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
