package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type CancelAppointment struct {
	store domain.Store
	audit Auditor
	env   Env
}

func NewCancelAppointment(
	store domain.Store,
	audit Auditor,
	env Env,
) *CancelAppointment {
	return &CancelAppointment{
		store: store,
		audit: audit,
		env:   env,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
	actorID uuid.UUID,
	reason string,
) (*models.Appointment, error) {

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrMissingReason
	}
	if err := domain.CheckReasonLength(reason); err != nil {
		return nil, err
	}

	ap, err := mutate(ctx, uc.store, appointmentID, func(ap *models.Appointment) error {
		return domain.Cancel(ap, actorID, reason, uc.env.now())
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(actorID, "appointment_canceled", ap, map[string]any{
		"reason": reason,
	}))

	uc.env.Logger.Info().
		Str("appointment_id", ap.ID.String()).
		Msg("appointment canceled")

	return ap, nil
}
