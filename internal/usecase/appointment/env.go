package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// Auditor receives audit events; *audit.Dispatcher implements it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Env carries what every use case needs besides its ports.
type Env struct {
	Location *time.Location
	Now      func() time.Time
	Logger   zerolog.Logger
}

func (e Env) loc() *time.Location {
	if e.Location == nil {
		return timezone.Location(timezone.DefaultTimezone)
	}
	return e.Location
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now().In(e.loc())
	}
	return e.Now().In(e.loc())
}

// mutate loads an appointment, applies a domain action and saves it only if
// nobody changed it in between.
func mutate(
	ctx context.Context,
	store domain.Store,
	id uuid.UUID,
	apply func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	ap, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	version := domain.VersionOf(ap)
	if err := apply(ap); err != nil {
		return nil, err
	}

	if err := store.Save(ctx, ap, version); err != nil {
		return nil, err
	}
	return ap, nil
}

func event(actor uuid.UUID, action string, ap *models.Appointment, metadata any) audit.Event {
	ev := audit.Event{
		Action:   action,
		Entity:   "appointment",
		Metadata: metadata,
	}
	if actor != uuid.Nil {
		ev.ActorID = &actor
	}
	if ap != nil {
		id := ap.ID
		ev.EntityID = &id
	}
	return ev
}
