package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// System is used by operator commands that act on behalf of the platform.
var System = Actor{Role: models.RoleAdmin}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanView allows the parties of ap and administrators.
func (a Actor) CanView(ap *models.Appointment) bool {
	return a.IsAdmin() || IsParty(ap, a.ID)
}
