package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRule is the weekly schedule of a service for one weekday
// (0 = domingo). Times are "HH:MM" labels in the operating timezone.
type AvailabilityRule struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rule_service_day" json:"service_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_rule_service_day" json:"day_of_week"`

	StartTime    string  `gorm:"size:5;not null" json:"start_time"`
	EndTime      string  `gorm:"size:5;not null" json:"end_time"`
	BreakStart   *string `gorm:"size:5" json:"break_start"`
	BreakEnd     *string `gorm:"size:5" json:"break_end"`
	SlotDuration int     `gorm:"not null" json:"slot_duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *AvailabilityRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
