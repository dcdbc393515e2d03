package appointment

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-core/internal/lock"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

const (
	minDescriptionLength = 20
	maxDescriptionLength = 1000
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID uuid.UUID
	ClientID  uuid.UUID

	Start time.Time
	End   time.Time

	Description   string
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	clients  domain.ClientLookup
	services domain.ServiceLookup
	store    domain.Store
	locker   lock.Locker
	audit    Auditor
	env      Env
}

func NewCreateAppointment(
	clients domain.ClientLookup,
	services domain.ServiceLookup,
	store domain.Store,
	locker lock.Locker,
	audit Auditor,
	env Env,
) *CreateAppointment {
	return &CreateAppointment{
		clients:  clients,
		services: services,
		store:    store,
		locker:   locker,
		audit:    audit,
		env:      env,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	loc := uc.env.loc()
	now := uc.env.now()

	// --------------------------------------------------
	// 0. Dados da requisição
	// --------------------------------------------------
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(in.Description)
	if n := utf8.RuneCountInString(description); n < minDescriptionLength || n > maxDescriptionLength {
		return nil, domain.ErrInvalidDescription
	}

	if in.Start.Before(now) {
		return nil, domain.ErrStartInPast
	}

	// --------------------------------------------------
	// 1. Cliente e serviço
	// --------------------------------------------------
	exists, err := uc.clients.ClientExists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrClientNotFound
	}

	svc, err := uc.services.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.ProviderActive {
		return nil, domain.ErrServiceNotFound
	}

	// --------------------------------------------------
	// 2. Auto agendamento
	// --------------------------------------------------
	if svc.ProviderID == in.ClientID {
		return nil, domain.ErrSelfBooking
	}

	// --------------------------------------------------
	// 3. Domingo
	// --------------------------------------------------
	start := in.Start.In(loc)
	end := in.End.In(loc)

	if start.Weekday() == time.Sunday {
		return nil, domain.ErrClosedDay
	}

	// --------------------------------------------------
	// 4. Regra do dia
	// --------------------------------------------------
	rule, ok := schedule.RuleFor(svc.Rules, start)
	if !ok {
		return nil, domain.ErrUnavailableDay
	}

	// --------------------------------------------------
	// 5. Expediente, pausa, duração e grade
	// --------------------------------------------------
	if !onMinute(start) {
		return nil, domain.ErrMisalignedSlot
	}
	if !onMinute(end) {
		return nil, domain.ErrInvalidRange
	}

	dayStart := schedule.StartOfDay(start)
	requested := schedule.Interval{
		Start: schedule.ClockOf(dayStart, start),
		End:   schedule.ClockOf(dayStart, end),
	}

	if err := domain.CheckWithinRule(rule, requested.Start, requested.End); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Preço e status inicial
	// --------------------------------------------------
	ap := &models.Appointment{
		ServiceID:          svc.ID,
		ProviderID:         svc.ProviderID,
		ClientID:           in.ClientID,
		ScheduledStartTime: start,
		ScheduledEndTime:   end,
		Description:        description,
		PaymentMethod:      string(method),
		Price:              domain.Price(svc.Price, requested.Duration(), rule.SlotDuration),
		Status:             string(domain.InitialStatus(svc.AutoAccept)),
	}

	// --------------------------------------------------
	// 7. Conflito de horário (serializado por prestador)
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, lock.ProviderKey(svc.ProviderID))
	if err != nil {
		return nil, err
	}
	defer release()

	err = uc.store.WithinProviderTx(ctx, svc.ProviderID, func(tx domain.Store) error {
		consumed, err := ConsumedIntervalsFor(ctx, tx, svc.ProviderID, start, loc)
		if err != nil {
			return err
		}

		if schedule.IsConsumed(requested, consumed) {
			return domain.ErrSlotConflict
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		return tx.Create(ctx, ap)
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			uc.audit.Dispatch(event(in.ClientID, "appointment_conflict", nil, map[string]any{
				"provider_id": svc.ProviderID,
				"start":       start,
				"end":         end,
			}))
		}
		return nil, err
	}

	// --------------------------------------------------
	// Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(event(in.ClientID, "appointment_created", ap, map[string]any{
		"status": ap.Status,
		"price":  ap.Price,
	}))

	uc.env.Logger.Info().
		Str("appointment_id", ap.ID.String()).
		Str("provider_id", ap.ProviderID.String()).
		Str("status", ap.Status).
		Msg("appointment created")

	return ap, nil
}

func onMinute(t time.Time) bool {
	return t.Truncate(time.Minute).Equal(t)
}
