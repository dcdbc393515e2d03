package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// AppointmentGormRepository stores every timestamp in UTC so range
// comparisons behave the same on every dialect.
type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.ScheduledStartTime = ap.ScheduledStartTime.UTC()
	ap.ScheduledEndTime = ap.ScheduledEndTime.UTC()

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ErrSlotConflict
		}
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindProviderAppointmentsInRange(
	ctx context.Context,
	providerID uuid.UUID,
	from time.Time,
	to time.Time,
	statuses []string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND scheduled_start_time >= ? AND scheduled_start_time < ?",
			providerID, from.UTC(), to.UTC(),
		)

	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var apps []models.Appointment
	if err := q.
		Order("scheduled_start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list provider appointments: %w", err)
	}

	return apps, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
	expected domain.Version,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(expected.Status))

	if expected.PaymentStatus == "" {
		q = q.Where("payment_status IS NULL")
	} else {
		q = q.Where("payment_status = ?", string(expected.PaymentStatus))
	}

	res := q.Updates(map[string]any{
		"status":              ap.Status,
		"payment_status":      ap.PaymentStatus,
		"payment_reference":   ap.PaymentReference,
		"cancellation_reason": ap.CancellationReason,
		"canceled_at":         utcPtr(ap.CanceledAt),
		"completed_at":        utcPtr(ap.CompletedAt),
		"paid_at":             utcPtr(ap.PaidAt),
		"updated_at":          time.Now().UTC(),
	})
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return domain.ErrPaymentRefInUse
		}
		return fmt.Errorf("save appointment: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, ap.ID); err != nil {
			return err
		}
		return domain.ErrStaleAppointment
	}

	return nil
}

func (r *AppointmentGormRepository) BulkCancelFuture(
	ctx context.Context,
	providerID uuid.UUID,
	now time.Time,
	reason string,
) (int64, error) {

	now = now.UTC()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND scheduled_start_time > ? AND status IN ?",
			providerID, now, domain.BlockingStatuses(),
		).
		Updates(map[string]any{
			"status":              string(domain.StatusCanceled),
			"cancellation_reason": reason,
			"canceled_at":         now,
			"updated_at":          now,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("bulk cancel: %w", res.Error)
	}

	return res.RowsAffected, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) WithinProviderTx(
	ctx context.Context,
	providerID uuid.UUID,
	fn func(domain.Store) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(hashtext(?))",
				providerID.String(),
			).Error; err != nil {
				return fmt.Errorf("provider lock: %w", err)
			}
		}

		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

// ListForPeriod loads the provider agenda with client and service names.
func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	providerID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"provider_id = ? AND scheduled_start_time >= ? AND scheduled_start_time < ?",
			providerID, from.UTC(), to.UTC(),
		).
		Order("scheduled_start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("list agenda: %w", err)
	}

	return apps, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Compile-time check
var (
	_ domain.Store        = (*AppointmentGormRepository)(nil)
	_ domain.AgendaReader = (*AppointmentGormRepository)(nil)
)

// isDuplicateKey accepts the raw postgres error and the dialect neutral
// error returned when TranslateError is on.
func isDuplicateKey(err error) bool {
	return httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey)
}
