package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	// Copied from the service at creation; used by conflict queries.
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_provider_start" json:"provider_id"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	ScheduledStartTime time.Time `gorm:"not null;index:idx_appointments_provider_start" json:"scheduled_start_time"`
	ScheduledEndTime   time.Time `gorm:"not null" json:"scheduled_end_time"`

	Description   string  `gorm:"size:1000" json:"description"`
	PaymentMethod string  `gorm:"size:20;not null" json:"payment_method"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	Status           string  `gorm:"size:20;not null;index" json:"status"`
	PaymentStatus    *string `gorm:"size:20" json:"payment_status"`
	PaymentReference *string `gorm:"size:100;uniqueIndex" json:"payment_reference"`

	CancellationReason *string    `gorm:"size:255" json:"cancellation_reason"`
	CanceledAt         *time.Time `json:"canceled_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	PaidAt             *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
