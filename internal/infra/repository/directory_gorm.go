package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// DirectoryGormRepository reads users, providers and services owned by
// other parts of the platform.
type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *DirectoryGormRepository) ClientExists(
	ctx context.Context,
	clientID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", clientID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup client: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *DirectoryGormRepository) ProviderExists(
	ctx context.Context,
	providerID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceProvider{}).
		Where("user_id = ?", providerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup provider: %w", err)
	}
	return count > 0, nil
}

func (r *DirectoryGormRepository) DeactivateProvider(
	ctx context.Context,
	providerID uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.ServiceProvider{}).
		Where("user_id = ?", providerID).
		Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate provider: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProviderNotFound
	}
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *DirectoryGormRepository) GetService(
	ctx context.Context,
	serviceID uuid.UUID,
) (*domain.ServiceInfo, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Availabilities").
		Where("id = ? AND active = ?", serviceID, true).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("lookup service: %w", err)
	}

	provider, err := r.provider(ctx, svc.ProviderID)
	if err != nil {
		return nil, err
	}

	return toServiceInfo(svc, provider)
}

func (r *DirectoryGormRepository) ListProviderServices(
	ctx context.Context,
	providerID uuid.UUID,
) ([]domain.ServiceInfo, error) {

	provider, err := r.provider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Availabilities", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		Where("provider_id = ? AND active = ?", providerID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	out := make([]domain.ServiceInfo, 0, len(services))
	for _, svc := range services {
		info, err := toServiceInfo(svc, provider)
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}

// provider returns a zero provider when the service owner has no provider
// profile; such services never auto accept and count as inactive.
func (r *DirectoryGormRepository) provider(
	ctx context.Context,
	providerID uuid.UUID,
) (models.ServiceProvider, error) {

	var p models.ServiceProvider
	err := r.db.WithContext(ctx).
		Where("user_id = ?", providerID).
		First(&p).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return p, fmt.Errorf("lookup provider: %w", err)
	}
	return p, nil
}

func toServiceInfo(svc models.Service, p models.ServiceProvider) (*domain.ServiceInfo, error) {
	rules := make([]schedule.Rule, 0, len(svc.Availabilities))
	for _, a := range svc.Availabilities {
		rule, err := schedule.NewRule(
			a.DayOfWeek,
			a.StartTime,
			a.EndTime,
			a.BreakStart,
			a.BreakEnd,
			a.SlotDuration,
		)
		if err != nil {
			return nil, fmt.Errorf("service %s has invalid rule for day %d: %w", svc.ID, a.DayOfWeek, err)
		}
		rules = append(rules, rule)
	}

	return &domain.ServiceInfo{
		ID:             svc.ID,
		ProviderID:     svc.ProviderID,
		Name:           svc.Name,
		Price:          svc.Price,
		AutoAccept:     p.AutoAcceptAppointments,
		ProviderActive: p.Active,
		Rules:          rules,
	}, nil
}

var (
	_ domain.ClientLookup     = (*DirectoryGormRepository)(nil)
	_ domain.ServiceLookup    = (*DirectoryGormRepository)(nil)
	_ domain.ProviderRegistry = (*DirectoryGormRepository)(nil)
)
