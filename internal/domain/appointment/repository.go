package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// ServiceInfo is the read model of a service and its provider.
type ServiceInfo struct {
	ID             uuid.UUID
	ProviderID     uuid.UUID
	Name           string
	Price          float64
	AutoAccept     bool
	ProviderActive bool
	Rules          []schedule.Rule
}

type ClientLookup interface {
	ClientExists(
		ctx context.Context,
		clientID uuid.UUID,
	) (bool, error)
}

type ServiceLookup interface {
	// GetService returns ErrServiceNotFound when the service is missing.
	GetService(
		ctx context.Context,
		serviceID uuid.UUID,
	) (*ServiceInfo, error)

	ProviderExists(
		ctx context.Context,
		providerID uuid.UUID,
	) (bool, error)

	ListProviderServices(
		ctx context.Context,
		providerID uuid.UUID,
	) ([]ServiceInfo, error)
}

type Store interface {
	// -------- create --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- read --------
	FindByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	FindProviderAppointmentsInRange(
		ctx context.Context,
		providerID uuid.UUID,
		from time.Time,
		to time.Time,
		statuses []string,
	) ([]models.Appointment, error)

	// -------- state change --------

	// Save persists ap only if its stored version still equals expected,
	// otherwise it returns ErrStaleAppointment.
	Save(
		ctx context.Context,
		ap *models.Appointment,
		expected Version,
	) error

	BulkCancelFuture(
		ctx context.Context,
		providerID uuid.UUID,
		now time.Time,
		reason string,
	) (int64, error)

	// WithinProviderTx runs fn in one storage transaction serialized per
	// provider. Nothing fn wrote survives if it returns an error.
	WithinProviderTx(
		ctx context.Context,
		providerID uuid.UUID,
		fn func(Store) error,
	) error
}

// PaymentVerifier checks an electronic payment with the gateway.
type PaymentVerifier interface {
	Verify(
		ctx context.Context,
		reference string,
		amount float64,
	) error
}

// ReceiptArchiver stores a receipt of a settled appointment and returns its key.
type ReceiptArchiver interface {
	Archive(
		ctx context.Context,
		ap *models.Appointment,
	) (string, error)
}

// AgendaReader lists a provider agenda with client and service preloaded.
type AgendaReader interface {
	ListForPeriod(
		ctx context.Context,
		providerID uuid.UUID,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}

// ProviderRegistry flips the provider active flag.
type ProviderRegistry interface {
	DeactivateProvider(
		ctx context.Context,
		providerID uuid.UUID,
	) error
}
