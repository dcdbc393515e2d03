package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type GetAppointment struct {
	store domain.Store
}

func NewGetAppointment(store domain.Store) *GetAppointment {
	return &GetAppointment{store: store}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	actor domain.Actor,
) (*models.Appointment, error) {

	ap, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(ap) {
		return nil, domain.ErrForbidden
	}
	return ap, nil
}

// HistoryReader reads the audit trail of an entity.
type HistoryReader interface {
	ListByEntity(
		ctx context.Context,
		entity string,
		entityID uuid.UUID,
		limit int,
		offset int,
	) ([]models.AuditLog, int64, error)
}

type AppointmentHistory struct {
	get     *GetAppointment
	history HistoryReader
}

func NewAppointmentHistory(get *GetAppointment, history HistoryReader) *AppointmentHistory {
	return &AppointmentHistory{
		get:     get,
		history: history,
	}
}

func (uc *AppointmentHistory) Execute(
	ctx context.Context,
	id uuid.UUID,
	actor domain.Actor,
	limit int,
	offset int,
) ([]models.AuditLog, int64, error) {

	if _, err := uc.get.Execute(ctx, id, actor); err != nil {
		return nil, 0, err
	}
	return uc.history.ListByEntity(ctx, "appointment", id, limit, offset)
}
