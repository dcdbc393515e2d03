package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceProvider struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	AutoAcceptAppointments bool `gorm:"default:false" json:"auto_accept_appointments"`
	Active                 bool `gorm:"default:true" json:"active"`

	Services []Service `gorm:"foreignKey:ProviderID;references:UserID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
