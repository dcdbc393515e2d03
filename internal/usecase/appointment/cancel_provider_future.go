package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/lock"
)

const providerDeactivatedReason = "Prestador desativado."

// CancelProviderFutureAppointments cancels every blocking appointment of a
// provider that has not started yet.
type CancelProviderFutureAppointments struct {
	services domain.ServiceLookup
	store    domain.Store
	locker   lock.Locker
	audit    Auditor
	env      Env
}

func NewCancelProviderFutureAppointments(
	services domain.ServiceLookup,
	store domain.Store,
	locker lock.Locker,
	audit Auditor,
	env Env,
) *CancelProviderFutureAppointments {
	return &CancelProviderFutureAppointments{
		services: services,
		store:    store,
		locker:   locker,
		audit:    audit,
		env:      env,
	}
}

func (uc *CancelProviderFutureAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
	providerID uuid.UUID,
) (int64, error) {

	exists, err := uc.services.ProviderExists(ctx, providerID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrProviderNotFound
	}

	release, err := uc.locker.Acquire(ctx, lock.ProviderKey(providerID))
	if err != nil {
		return 0, err
	}
	defer release()

	var count int64
	err = uc.store.WithinProviderTx(ctx, providerID, func(tx domain.Store) error {
		n, err := tx.BulkCancelFuture(ctx, providerID, uc.env.now(), providerDeactivatedReason)
		count = n
		return err
	})
	if err != nil {
		return 0, err
	}

	ev := event(actor.ID, "provider_appointments_canceled", nil, map[string]any{
		"provider_id": providerID,
		"count":       count,
	})
	ev.Entity = "provider"
	ev.EntityID = &providerID
	uc.audit.Dispatch(ev)

	uc.env.Logger.Info().
		Str("provider_id", providerID.String()).
		Int64("count", count).
		Msg("provider future appointments canceled")

	return count, nil
}

// DeactivateProvider marks the provider inactive and frees its agenda.
type DeactivateProvider struct {
	registry domain.ProviderRegistry
	cancel   *CancelProviderFutureAppointments
}

func NewDeactivateProvider(
	registry domain.ProviderRegistry,
	cancel *CancelProviderFutureAppointments,
) *DeactivateProvider {
	return &DeactivateProvider{
		registry: registry,
		cancel:   cancel,
	}
}

func (uc *DeactivateProvider) Execute(
	ctx context.Context,
	actor domain.Actor,
	providerID uuid.UUID,
) (int64, error) {

	if !actor.IsAdmin() {
		return 0, domain.ErrForbidden
	}

	if err := uc.registry.DeactivateProvider(ctx, providerID); err != nil {
		return 0, err
	}

	return uc.cancel.Execute(ctx, actor, providerID)
}
