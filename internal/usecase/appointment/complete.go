package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type CompleteAppointment struct {
	store domain.Store
	audit Auditor
	env   Env
}

func NewCompleteAppointment(
	store domain.Store,
	audit Auditor,
	env Env,
) *CompleteAppointment {
	return &CompleteAppointment{
		store: store,
		audit: audit,
		env:   env,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
	actorID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := mutate(ctx, uc.store, appointmentID, func(ap *models.Appointment) error {
		return domain.Complete(ap, actorID, uc.env.now())
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(actorID, "appointment_completed", ap, nil))

	uc.env.Logger.Info().
		Str("appointment_id", ap.ID.String()).
		Msg("appointment completed")

	return ap, nil
}
