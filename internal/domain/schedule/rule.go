package schedule

import (
	"time"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
)

const (
	MinSlotDuration = 15
	MaxSlotDuration = 180
)

var (
	ErrInvalidWeekday      = httperr.ErrBusiness("invalid_weekday")
	ErrInvalidSlotDuration = httperr.ErrBusiness("invalid_slot_duration")
	ErrInvalidRuleWindow   = httperr.ErrBusiness("invalid_rule_window")
	ErrIncompleteBreak     = httperr.ErrBusiness("incomplete_break")
	ErrInvalidBreak        = httperr.ErrBusiness("invalid_break")
)

// Rule is the recurring schedule of a service for one weekday.
type Rule struct {
	DayOfWeek    time.Weekday
	Start        Clock
	End          Clock
	Break        *Interval
	SlotDuration int
}

// NewRule parses and validates a rule given in wall-clock labels.
// breakStart and breakEnd must be both nil or both set.
func NewRule(
	dayOfWeek int,
	start string,
	end string,
	breakStart *string,
	breakEnd *string,
	slotDuration int,
) (Rule, error) {

	if dayOfWeek < 0 || dayOfWeek > 6 {
		return Rule{}, ErrInvalidWeekday
	}

	s, err := ParseClock(start)
	if err != nil {
		return Rule{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Rule{}, err
	}

	r := Rule{
		DayOfWeek:    time.Weekday(dayOfWeek),
		Start:        s,
		End:          e,
		SlotDuration: slotDuration,
	}

	if (breakStart == nil) != (breakEnd == nil) {
		return Rule{}, ErrIncompleteBreak
	}
	if breakStart != nil {
		bs, err := ParseClock(*breakStart)
		if err != nil {
			return Rule{}, err
		}
		be, err := ParseClock(*breakEnd)
		if err != nil {
			return Rule{}, err
		}
		r.Break = &Interval{Start: bs, End: be}
	}

	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func (r Rule) Validate() error {
	if r.SlotDuration < MinSlotDuration || r.SlotDuration > MaxSlotDuration {
		return ErrInvalidSlotDuration
	}
	if r.End <= r.Start {
		return ErrInvalidRuleWindow
	}
	if r.Break != nil {
		if r.Break.End <= r.Break.Start {
			return ErrInvalidBreak
		}
		if r.Break.Start < r.Start || r.Break.End > r.End {
			return ErrInvalidBreak
		}
	}
	return nil
}

func (r Rule) Window() Interval {
	return Interval{Start: r.Start, End: r.End}
}

func (r Rule) SlotStarts() []Clock {
	return GenerateSlotStarts(r.Start, r.End, r.SlotDuration, r.Break)
}

func (r Rule) IsSlotStart(c Clock) bool {
	for _, s := range r.SlotStarts() {
		if s == c {
			return true
		}
	}
	return false
}

// RuleFor picks the rule matching date's weekday. A missing rule means the
// service is closed that day.
func RuleFor(rules []Rule, date time.Time) (Rule, bool) {
	for _, r := range rules {
		if r.DayOfWeek == date.Weekday() {
			return r, true
		}
	}
	return Rule{}, false
}
