package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
)

const statusApproved = "approved"

// paymentGetter is the slice of the Mercado Pago payment client we use.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*mppayment.Response, error)
}

// MercadoPagoVerifier checks that a payment reference is an approved
// Mercado Pago payment for the expected amount.
type MercadoPagoVerifier struct {
	client paymentGetter
	logger zerolog.Logger
}

func NewMercadoPagoVerifier(accessToken string, logger zerolog.Logger) (*MercadoPagoVerifier, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoVerifier{
		client: mppayment.NewClient(cfg),
		logger: logger,
	}, nil
}

func (v *MercadoPagoVerifier) Verify(ctx context.Context, reference string, amount float64) error {
	id, err := strconv.Atoi(reference)
	if err != nil {
		return domain.ErrPaymentNotApproved
	}

	res, err := v.client.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("mercadopago get payment %d: %w", id, err)
	}

	if res.Status != statusApproved || math.Abs(res.TransactionAmount-amount) >= 0.005 {
		v.logger.Warn().
			Int("payment_id", id).
			Str("status", res.Status).
			Float64("amount", res.TransactionAmount).
			Float64("expected", amount).
			Msg("payment not accepted")
		return domain.ErrPaymentNotApproved
	}

	return nil
}

var _ domain.PaymentVerifier = (*MercadoPagoVerifier)(nil)
