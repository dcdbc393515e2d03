package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type ConfirmPaymentInput struct {
	AppointmentID    uuid.UUID
	ActorID          uuid.UUID
	PaymentReference string
}

// ConfirmPayment settles a completed appointment. The verifier and the
// receipt archiver are optional.
type ConfirmPayment struct {
	store    domain.Store
	verifier domain.PaymentVerifier
	receipts domain.ReceiptArchiver
	audit    Auditor
	env      Env
}

func NewConfirmPayment(
	store domain.Store,
	verifier domain.PaymentVerifier,
	receipts domain.ReceiptArchiver,
	audit Auditor,
	env Env,
) *ConfirmPayment {
	return &ConfirmPayment{
		store:    store,
		verifier: verifier,
		receipts: receipts,
		audit:    audit,
		env:      env,
	}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	in ConfirmPaymentInput,
) (*models.Appointment, error) {

	reference := strings.TrimSpace(in.PaymentReference)
	if err := domain.CheckPaymentReference(reference); err != nil {
		return nil, err
	}

	ap, err := mutate(ctx, uc.store, in.AppointmentID, func(ap *models.Appointment) error {
		if err := domain.ConfirmPayment(ap, in.ActorID, uc.env.now()); err != nil {
			return err
		}

		if uc.verifier != nil && domain.PaymentMethod(ap.PaymentMethod).Electronic() {
			if reference == "" {
				return domain.ErrMissingPaymentRef
			}
			if err := uc.verifier.Verify(ctx, reference, ap.Price); err != nil {
				return err
			}
		}

		if reference != "" {
			ap.PaymentReference = &reference
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(in.ActorID, "appointment_paid", ap, map[string]any{
		"payment_method":    ap.PaymentMethod,
		"payment_reference": reference,
	}))

	if uc.receipts != nil {
		key, err := uc.receipts.Archive(ctx, ap)
		if err != nil {
			uc.env.Logger.Warn().Err(err).
				Str("appointment_id", ap.ID.String()).
				Msg("receipt archive failed")
		} else {
			uc.env.Logger.Info().
				Str("appointment_id", ap.ID.String()).
				Str("receipt", key).
				Msg("receipt archived")
		}
	}

	return ap, nil
}
