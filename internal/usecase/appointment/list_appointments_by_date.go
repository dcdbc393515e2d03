package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/dto"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

type ListAppointmentsByDate struct {
	agenda domain.AgendaReader
	env    Env
}

func NewListAppointmentsByDate(
	agenda domain.AgendaReader,
	env Env,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		agenda: agenda,
		env:    env,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	loc := uc.env.loc()
	start, end := timezone.DayBounds(date, loc)

	appointments, err := uc.agenda.ListForPeriod(ctx, providerID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(appointments, loc), nil
}
