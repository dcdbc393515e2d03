package schedule

// Interval is a half-open wall-clock range [Start, End).
type Interval struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

func NewInterval(start Clock, minutes int) Interval {
	return Interval{Start: start, End: start.Add(minutes)}
}

func (i Interval) Duration() int {
	return int(i.End - i.Start)
}

// Contains reports whether c lies in [Start, End).
func (i Interval) Contains(c Clock) bool {
	return i.Start <= c && c < i.End
}

// Overlaps is symmetric; touching intervals do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// IsConsumed reports whether candidate overlaps any member of consumed.
func IsConsumed(candidate Interval, consumed []Interval) bool {
	for _, c := range consumed {
		if Overlaps(candidate, c) {
			return true
		}
	}
	return false
}
