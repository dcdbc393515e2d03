package schedule

// GenerateSlotStarts returns the slot starts of the day grid beginning at
// start. The cursor always advances by slotDuration; a slot is emitted only
// when it ends at or before end and does not intersect brk. A nil brk means
// no break.
func GenerateSlotStarts(start, end Clock, slotDuration int, brk *Interval) []Clock {
	if slotDuration <= 0 || end <= start {
		return []Clock{}
	}

	out := make([]Clock, 0, int(end-start)/slotDuration)
	for cur := start; cur.Add(slotDuration) <= end; cur = cur.Add(slotDuration) {
		if brk != nil && Overlaps(NewInterval(cur, slotDuration), *brk) {
			continue
		}
		out = append(out, cur)
	}

	return out
}

// Labels renders clocks as "HH:MM".
func Labels(cs []Clock) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.String())
	}
	return out
}
