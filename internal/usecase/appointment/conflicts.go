package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// ConsumedIntervalsFor returns the wall-clock intervals taken by blocking
// appointments of the provider on date's day in loc. Both booking
// validation and the availability view read it.
func ConsumedIntervalsFor(
	ctx context.Context,
	store domain.Store,
	providerID uuid.UUID,
	date time.Time,
	loc *time.Location,
) ([]schedule.Interval, error) {

	dayStart, dayEnd := timezone.DayBounds(date, loc)

	apps, err := store.FindProviderAppointmentsInRange(
		ctx,
		providerID,
		dayStart,
		dayEnd,
		domain.BlockingStatuses(),
	)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Interval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, schedule.Interval{
			Start: schedule.ClockOf(dayStart, ap.ScheduledStartTime.In(loc)),
			End:   schedule.ClockOf(dayStart, ap.ScheduledEndTime.In(loc)),
		})
	}
	return out, nil
}
