package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
)

type GetProviderAvailability struct {
	services domain.ServiceLookup
	store    domain.Store
	env      Env
}

func NewGetProviderAvailability(
	services domain.ServiceLookup,
	store domain.Store,
	env Env,
) *GetProviderAvailability {
	return &GetProviderAvailability{
		services: services,
		store:    store,
		env:      env,
	}
}

// Execute lists every bookable service of the provider with all its weekly
// rules. Only the rule of date's weekday carries free slots; on Sundays, past
// days and for slots already started today the list is empty. A deactivated
// provider has no bookable service.
func (uc *GetProviderAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	date time.Time,
) ([]domain.ServiceAvailability, error) {

	exists, err := uc.services.ProviderExists(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProviderNotFound
	}

	services, err := uc.services.ListProviderServices(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc := uc.env.loc()
	day := date.In(loc)
	dayStart := schedule.StartOfDay(day)
	now := uc.env.now()

	// slots must start after cutoff
	cutoff := schedule.Clock(-1)
	open := day.Weekday() != time.Sunday
	switch {
	case !dayStart.AddDate(0, 0, 1).After(now):
		open = false
	case !dayStart.After(now):
		cutoff = schedule.ClockOf(dayStart, now)
	}

	var consumed []schedule.Interval
	if open {
		consumed, err = ConsumedIntervalsFor(ctx, uc.store, providerID, day, loc)
		if err != nil {
			return nil, err
		}
	}

	out := make([]domain.ServiceAvailability, 0, len(services))
	for _, svc := range services {
		if !svc.ProviderActive {
			continue
		}

		rules := make([]domain.RuleAvailability, 0, len(svc.Rules))

		for _, rule := range svc.Rules {
			free := []schedule.Clock{}
			if open && rule.DayOfWeek == day.Weekday() {
				for _, s := range rule.SlotStarts() {
					if s <= cutoff {
						continue
					}
					if schedule.IsConsumed(schedule.NewInterval(s, rule.SlotDuration), consumed) {
						continue
					}
					free = append(free, s)
				}
			}

			rules = append(rules, toRuleAvailability(rule, schedule.Labels(free)))
		}

		out = append(out, domain.ServiceAvailability{
			ServiceID:      svc.ID,
			Name:           svc.Name,
			Price:          svc.Price,
			Availabilities: rules,
		})
	}

	return out, nil
}

func toRuleAvailability(rule schedule.Rule, slots []string) domain.RuleAvailability {
	ra := domain.RuleAvailability{
		DayOfWeek:      int(rule.DayOfWeek),
		StartTime:      rule.Start.String(),
		EndTime:        rule.End.String(),
		SlotDuration:   rule.SlotDuration,
		AvailableSlots: slots,
	}
	if rule.Break != nil {
		bs, be := rule.Break.Start.String(), rule.Break.End.String()
		ra.BreakStart = &bs
		ra.BreakEnd = &be
	}
	return ra
}
