package appointment

import "github.com/google/uuid"

// ServiceAvailability is one service of the provider availability view.
type ServiceAvailability struct {
	ServiceID      uuid.UUID          `json:"service_id"`
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	Availabilities []RuleAvailability `json:"availabilities"`
}

// RuleAvailability carries every weekly rule; AvailableSlots is empty,
// never null, on days the rule does not apply.
type RuleAvailability struct {
	DayOfWeek      int      `json:"day_of_week"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	BreakStart     *string  `json:"break_start"`
	BreakEnd       *string  `json:"break_end"`
	SlotDuration   int      `json:"slot_duration"`
	AvailableSlots []string `json:"available_slots"`
}
