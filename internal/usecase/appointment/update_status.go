package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID uuid.UUID
	Status        string
	Reason        string
	Actor         domain.Actor
}

// UpdateStatus is the provider side transition: approve, reject, cancel or
// complete following the transition table.
type UpdateStatus struct {
	store domain.Store
	audit Auditor
	env   Env
}

func NewUpdateStatus(
	store domain.Store,
	audit Auditor,
	env Env,
) *UpdateStatus {
	return &UpdateStatus{
		store: store,
		audit: audit,
		env:   env,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(in.Reason)
	if status == domain.StatusCanceled && reason == "" {
		return nil, domain.ErrMissingReason
	}
	if err := domain.CheckReasonLength(reason); err != nil {
		return nil, err
	}

	var from string
	ap, err := mutate(ctx, uc.store, in.AppointmentID, func(ap *models.Appointment) error {
		if !in.Actor.IsAdmin() && in.Actor.ID != ap.ProviderID {
			return domain.ErrForbidden
		}
		from = ap.Status
		return domain.Transition(ap, status, reason, uc.env.now())
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(in.Actor.ID, "appointment_status_changed", ap, map[string]any{
		"from":   from,
		"to":     ap.Status,
		"reason": reason,
	}))

	uc.env.Logger.Info().
		Str("appointment_id", ap.ID.String()).
		Str("from", from).
		Str("to", ap.Status).
		Msg("appointment status changed")

	return ap, nil
}
