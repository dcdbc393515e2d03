package appointment

import (
	"math"

	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
)

// CheckWithinRule validates the wall-clock shape of a booking against the
// rule of its day: working window, break and slot grid.
func CheckWithinRule(rule schedule.Rule, start, end schedule.Clock) error {
	if start >= end {
		return ErrInvalidRange
	}

	window := rule.Window()
	if start < window.Start || end > window.End {
		return ErrOutsideWorkingHours
	}

	if brk := rule.Break; brk != nil {
		if brk.Contains(start) {
			return ErrStartInBreak
		}
		// end == break start is allowed, the booking stops at the break
		if end > brk.Start && end < brk.End {
			return ErrEndInBreak
		}
		if schedule.Overlaps(schedule.Interval{Start: start, End: end}, *brk) {
			return ErrSpansBreak
		}
	}

	if int(end-start) < rule.SlotDuration {
		return ErrDurationTooShort
	}

	if !rule.IsSlotStart(start) {
		return ErrMisalignedSlot
	}

	return nil
}

// Price bills the service price per slot multiple, rounded to cents.
func Price(servicePrice float64, durationMinutes, slotDuration int) float64 {
	raw := servicePrice * float64(durationMinutes) / float64(slotDuration)
	return math.Round(raw*100) / 100
}
