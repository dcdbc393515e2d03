package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

var allStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCanceled, StatusCompleted}

func newAppointment(status Status, method PaymentMethod) *models.Appointment {
	return &models.Appointment{
		ID:            uuid.New(),
		ClientID:      uuid.New(),
		ProviderID:    uuid.New(),
		Status:        string(status),
		PaymentMethod: string(method),
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatus("DONE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("PIX")
	require.NoError(t, err)
	assert.True(t, m.Electronic())
	assert.False(t, MethodCash.Electronic())

	_, err = ParsePaymentMethod("BOLETO")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestTransitionTable(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusApproved}:   true,
		{StatusPending, StatusRejected}:   true,
		{StatusPending, StatusCanceled}:   true,
		{StatusApproved, StatusCanceled}:  true,
		{StatusApproved, StatusCompleted}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			assert.Equal(t, allowed[[2]Status{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesAcceptNoTransition(t *testing.T) {
	terminal := map[Status]bool{StatusRejected: true, StatusCanceled: true, StatusCompleted: true}

	for _, from := range allStatuses {
		assert.Equal(t, terminal[from], from.Terminal(), string(from))
		if !from.Terminal() {
			continue
		}
		for _, to := range allStatuses {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.ErrorIs(t, CheckTransition(StatusCompleted, StatusCompleted), ErrAlreadyCompleted)
	assert.ErrorIs(t, CheckTransition(StatusCanceled, StatusCanceled), ErrAlreadyCanceled)
	assert.ErrorIs(t, CheckTransition(StatusRejected, StatusRejected), ErrInvalidTransition)
	assert.ErrorIs(t, CheckTransition(StatusCompleted, StatusCanceled), ErrInvalidTransition)
}

func TestTransition_ReasonLength(t *testing.T) {
	ap := newAppointment(StatusPending, MethodPix)
	err := Transition(ap, StatusCanceled, strings.Repeat("a", MaxReasonLength+1), time.Now())
	assert.ErrorIs(t, err, ErrReasonTooLong)
	assert.Equal(t, string(StatusPending), ap.Status)

	assert.ErrorIs(t, CheckPaymentReference(strings.Repeat("1", MaxPaymentReferenceLength+1)), ErrPaymentRefTooLong)
	assert.NoError(t, CheckPaymentReference(strings.Repeat("1", MaxPaymentReferenceLength)))
}

func TestCompletedIsClosedForStatusChanges(t *testing.T) {
	for _, to := range allStatuses {
		ap := newAppointment(StatusCompleted, MethodPix)
		err := Transition(ap, to, "motivo", time.Now())
		assert.Error(t, err, "COMPLETED -> %s", to)
		assert.Equal(t, string(StatusCompleted), ap.Status)
	}

	ap := newAppointment(StatusCompleted, MethodPix)
	pending := string(PaymentPending)
	ap.PaymentStatus = &pending
	require.NoError(t, ConfirmPayment(ap, ap.ClientID, time.Now()))
	assert.Equal(t, string(PaymentPaid), *ap.PaymentStatus)
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestCancel(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusPending, MethodPix)
	assert.ErrorIs(t, Cancel(ap, ap.ClientID, "  ", now), ErrMissingReason)
	assert.Equal(t, string(StatusPending), ap.Status)

	assert.ErrorIs(t, Cancel(ap, uuid.New(), "imprevisto", now), ErrForbidden)

	require.NoError(t, Cancel(ap, ap.ProviderID, "imprevisto", now))
	assert.Equal(t, string(StatusCanceled), ap.Status)
	require.NotNil(t, ap.CancellationReason)
	assert.Equal(t, "imprevisto", *ap.CancellationReason)
	assert.Equal(t, &now, ap.CanceledAt)

	assert.ErrorIs(t, Cancel(ap, ap.ClientID, "de novo", now), ErrAlreadyCanceled)

	for _, s := range []Status{StatusCompleted, StatusRejected} {
		ap := newAppointment(s, MethodPix)
		assert.ErrorIs(t, Cancel(ap, ap.ClientID, "motivo", now), ErrInvalidTransition)
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusApproved, MethodCash)
	require.NoError(t, Complete(ap, ap.ClientID, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.PaymentStatus)
	assert.Equal(t, string(PaymentPending), *ap.PaymentStatus)

	assert.ErrorIs(t, Complete(ap, ap.ClientID, now), ErrAlreadyCompleted)
	assert.Equal(t, string(StatusCompleted), ap.Status)

	for _, s := range []Status{StatusCanceled, StatusRejected, StatusPending} {
		ap := newAppointment(s, MethodCash)
		assert.ErrorIs(t, Complete(ap, ap.ProviderID, now), ErrInvalidTransition, string(s))
	}

	assert.ErrorIs(t, Complete(newAppointment(StatusApproved, MethodCash), uuid.New(), now), ErrForbidden)
}

func TestConfirmPayment(t *testing.T) {
	now := time.Now()

	cash := newAppointment(StatusCompleted, MethodCash)
	assert.ErrorIs(t, ConfirmPayment(cash, cash.ClientID, now), ErrCashRequiresProvider)
	require.NoError(t, ConfirmPayment(cash, cash.ProviderID, now))
	assert.ErrorIs(t, ConfirmPayment(cash, cash.ProviderID, now), ErrAlreadyPaid)

	early := newAppointment(StatusApproved, MethodCreditCard)
	assert.ErrorIs(t, ConfirmPayment(early, early.ClientID, now), ErrPaymentBeforeCompletion)

	stranger := newAppointment(StatusCompleted, MethodPix)
	assert.ErrorIs(t, ConfirmPayment(stranger, uuid.New(), now), ErrForbidden)
}

func TestVersionOf(t *testing.T) {
	ap := newAppointment(StatusCompleted, MethodPix)
	assert.Equal(t, Version{Status: StatusCompleted}, VersionOf(ap))

	paid := string(PaymentPaid)
	ap.PaymentStatus = &paid
	assert.Equal(t, Version{Status: StatusCompleted, PaymentStatus: PaymentPaid}, VersionOf(ap))
}

func TestCheckWithinRule(t *testing.T) {
	bs, be := "12:00", "13:00"
	rule, err := schedule.NewRule(1, "08:00", "18:00", &bs, &be, 30)
	require.NoError(t, err)

	c := schedule.MustParseClock
	cases := []struct {
		start, end string
		want       error
	}{
		{"09:00", "09:30", nil},
		{"11:30", "12:00", nil},
		{"13:00", "14:00", nil},
		{"17:30", "18:00", nil},
		{"09:30", "09:00", ErrInvalidRange},
		{"07:30", "08:30", ErrOutsideWorkingHours},
		{"17:30", "18:30", ErrOutsideWorkingHours},
		{"12:00", "12:30", ErrStartInBreak},
		{"12:30", "13:30", ErrStartInBreak},
		{"11:30", "12:30", ErrEndInBreak},
		{"11:00", "13:30", ErrSpansBreak},
		{"11:30", "13:00", ErrSpansBreak},
		{"09:00", "09:15", ErrDurationTooShort},
		{"09:15", "09:45", ErrMisalignedSlot},
	}

	for _, tc := range cases {
		err := CheckWithinRule(rule, c(tc.start), c(tc.end))
		if tc.want == nil {
			assert.NoError(t, err, "%s-%s", tc.start, tc.end)
			continue
		}
		assert.ErrorIs(t, err, tc.want, "%s-%s", tc.start, tc.end)
	}
}

func TestPrice(t *testing.T) {
	for k := 1; k <= 6; k++ {
		assert.InDelta(t, 45.5*float64(k), Price(45.5, 30*k, 30), 0.001)
	}
	assert.Equal(t, 33.33, Price(100, 20, 60))
}
