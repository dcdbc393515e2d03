package schedule

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, Clock(510), c)
	assert.Equal(t, "08:30", c.String())

	c, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, Clock(1439), c)

	for _, bad := range []string{"", "8:30", "24:00", "12:60", "ab:cd", "12-30", "12:3", "1230", "12:30:00"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrMalformedTime, bad)
	}
}

func TestClockOf(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, MustParseClock("09:15"), ClockOf(day, day.Add(9*time.Hour+15*time.Minute)))
	assert.Equal(t, Clock(MinutesPerDay), ClockOf(day, day.Add(26*time.Hour)))
	assert.Equal(t, Clock(0), ClockOf(day, day.Add(-time.Hour)))
	assert.Equal(t, day.Add(14*time.Hour), At(day.Add(5*time.Hour), MustParseClock("14:00")))
}

func TestClockOf_ReadsWallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// clocks jump from 02:00 to 03:00 on this day
	day := time.Date(2025, 3, 9, 0, 0, 0, 0, ny)
	nine := time.Date(2025, 3, 9, 9, 0, 0, 0, ny)

	assert.Equal(t, MustParseClock("09:00"), ClockOf(day, nine))
	assert.Equal(t, Clock(MinutesPerDay), ClockOf(day, time.Date(2025, 3, 10, 0, 0, 0, 0, ny)))
}

func TestOverlaps_Symmetric(t *testing.T) {
	points := []Clock{0, 30, 60, 90, 120}
	for _, a1 := range points {
		for _, a2 := range points {
			for _, b1 := range points {
				for _, b2 := range points {
					a := Interval{a1, a2}
					b := Interval{b1, b2}
					assert.Equal(t, Overlaps(a, b), Overlaps(b, a))
				}
			}
		}
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	a := Interval{MustParseClock("09:00"), MustParseClock("09:30")}
	b := Interval{MustParseClock("09:30"), MustParseClock("10:00")}
	c := Interval{MustParseClock("09:15"), MustParseClock("09:45")}

	assert.False(t, Overlaps(a, b))
	assert.True(t, Overlaps(a, c))
	assert.True(t, IsConsumed(c, []Interval{b}))
	assert.False(t, IsConsumed(a, []Interval{b}))
	assert.False(t, IsConsumed(a, nil))
}

func TestGenerateSlotStarts_FloorCountWithoutBreak(t *testing.T) {
	for _, tc := range []struct{ start, end string }{
		{"08:00", "18:00"},
		{"08:00", "17:50"},
		{"09:10", "12:00"},
		{"00:00", "23:59"},
	} {
		start, end := MustParseClock(tc.start), MustParseClock(tc.end)
		for slot := MinSlotDuration; slot <= MaxSlotDuration; slot += 5 {
			got := GenerateSlotStarts(start, end, slot, nil)
			want := int(end-start) / slot
			require.Len(t, got, want, "%s-%s/%d", tc.start, tc.end, slot)
			for i, s := range got {
				assert.Equal(t, start.Add(i*slot), s)
			}
		}
	}
}

func TestGenerateSlotStarts_BreakExclusion(t *testing.T) {
	start, end := MustParseClock("07:00"), MustParseClock("19:00")
	brk := Interval{MustParseClock("12:10"), MustParseClock("13:20")}

	for slot := MinSlotDuration; slot <= 120; slot += 5 {
		got := GenerateSlotStarts(start, end, slot, &brk)
		for _, s := range got {
			assert.False(t, Overlaps(NewInterval(s, slot), brk), "slot %s/%d hits break", s, slot)
			assert.Zero(t, int(s-start)%slot, "grid shifted at %s", s)
		}
	}
}

func TestRule_LunchBreakScenario(t *testing.T) {
	r, err := NewRule(1, "08:00", "18:00", strPtr("12:00"), strPtr("13:00"), 30)
	require.NoError(t, err)

	labels := Labels(r.SlotStarts())
	assert.Contains(t, labels, "11:30")
	assert.Contains(t, labels, "13:00")
	assert.NotContains(t, labels, "12:00")
	assert.NotContains(t, labels, "12:30")
	assert.Len(t, labels, 18)
	assert.Equal(t, "08:00", labels[0])
	assert.Equal(t, "17:30", labels[len(labels)-1])
}

func TestNewRule_Validation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		fn   func() (Rule, error)
	}{
		{"weekday", ErrInvalidWeekday, func() (Rule, error) { return NewRule(7, "08:00", "18:00", nil, nil, 30) }},
		{"slot too short", ErrInvalidSlotDuration, func() (Rule, error) { return NewRule(1, "08:00", "18:00", nil, nil, 10) }},
		{"slot too long", ErrInvalidSlotDuration, func() (Rule, error) { return NewRule(1, "08:00", "18:00", nil, nil, 181) }},
		{"end before start", ErrInvalidRuleWindow, func() (Rule, error) { return NewRule(1, "18:00", "08:00", nil, nil, 30) }},
		{"half break", ErrIncompleteBreak, func() (Rule, error) { return NewRule(1, "08:00", "18:00", strPtr("12:00"), nil, 30) }},
		{"inverted break", ErrInvalidBreak, func() (Rule, error) {
			return NewRule(1, "08:00", "18:00", strPtr("13:00"), strPtr("12:00"), 30)
		}},
		{"break outside", ErrInvalidBreak, func() (Rule, error) {
			return NewRule(1, "08:00", "18:00", strPtr("17:30"), strPtr("18:30"), 30)
		}},
		{"malformed", ErrMalformedTime, func() (Rule, error) { return NewRule(1, "8h", "18:00", nil, nil, 30) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestRuleFor(t *testing.T) {
	mon, _ := NewRule(int(time.Monday), "08:00", "12:00", nil, nil, 60)
	wed, _ := NewRule(int(time.Wednesday), "14:00", "18:00", nil, nil, 60)
	rules := []Rule{mon, wed}

	monday := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	r, ok := RuleFor(rules, monday)
	require.True(t, ok)
	assert.Equal(t, mon, r)

	_, ok = RuleFor(rules, monday.AddDate(0, 0, 1))
	assert.False(t, ok)

	assert.True(t, wed.IsSlotStart(MustParseClock("15:00")))
	assert.False(t, wed.IsSlotStart(MustParseClock("15:30")))
}
