package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/dto"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

type ListAppointmentsByMonth struct {
	agenda domain.AgendaReader
	env    Env
}

func NewListAppointmentsByMonth(
	agenda domain.AgendaReader,
	env Env,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		agenda: agenda,
		env:    env,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 1970 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	loc := uc.env.loc()
	start, end := timezone.MonthBounds(year, time.Month(month), loc)

	appointments, err := uc.agenda.ListForPeriod(ctx, providerID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(appointments, loc), nil
}
