package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
)

// MinutesPerDay is the exclusive upper bound of a Clock inside one day.
const MinutesPerDay = 24 * 60

var ErrMalformedTime = httperr.ErrBusiness("malformed_time")

// Clock is a wall-clock time expressed as minutes since midnight.
type Clock int

// ParseClock parses a strict "HH:MM" label.
func ParseClock(hhmm string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrMalformedTime
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrMalformedTime
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrMalformedTime
	}

	return Clock(h*60 + m), nil
}

// MustParseClock panics on malformed input. Meant for constants and tests.
func MustParseClock(hhmm string) Clock {
	c, err := ParseClock(hhmm)
	if err != nil {
		panic(fmt.Sprintf("schedule: bad clock %q", hhmm))
	}
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) Minutes() int {
	return int(c)
}

func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ClockOf reads t's wall clock on dayStart's calendar day, clamped to
// [0, MinutesPerDay] when t falls on another day.
// Callers must pass both values in the operating location.
func ClockOf(dayStart, t time.Time) Clock {
	y, m, d := dayStart.Date()
	ty, tm, td := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	other := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	switch {
	case other.Before(day):
		return 0
	case other.After(day):
		return MinutesPerDay
	}
	return Clock(t.Hour()*60 + t.Minute())
}

// At places c on the calendar day of date.
func At(date time.Time, c Clock) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, date.Location())
}
