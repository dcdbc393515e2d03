package appointment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// Column sizes of the free text fields.
const (
	MaxReasonLength           = 255
	MaxPaymentReferenceLength = 100
)

func CheckReasonLength(reason string) error {
	if utf8.RuneCountInString(reason) > MaxReasonLength {
		return ErrReasonTooLong
	}
	return nil
}

func CheckPaymentReference(reference string) error {
	if utf8.RuneCountInString(reference) > MaxPaymentReferenceLength {
		return ErrPaymentRefTooLong
	}
	return nil
}

// Version is the part of an appointment that writers compare before saving.
type Version struct {
	Status        Status
	PaymentStatus PaymentStatus
}

func VersionOf(ap *models.Appointment) Version {
	v := Version{Status: Status(ap.Status)}
	if ap.PaymentStatus != nil {
		v.PaymentStatus = PaymentStatus(*ap.PaymentStatus)
	}
	return v
}

// IsParty reports whether actor is the client or the provider of ap.
func IsParty(ap *models.Appointment, actor uuid.UUID) bool {
	return actor == ap.ClientID || actor == ap.ProviderID
}

// ===============================
// Domain Actions
// ===============================

// Transition applies a status change allowed by the transition table.
func Transition(ap *models.Appointment, to Status, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if to == StatusCanceled && reason == "" {
		return ErrMissingReason
	}
	if err := CheckReasonLength(reason); err != nil {
		return err
	}

	if err := CheckTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCanceled:
		ap.CancellationReason = &reason
		ap.CanceledAt = &now
	case StatusCompleted:
		pending := string(PaymentPending)
		ap.PaymentStatus = &pending
		ap.CompletedAt = &now
	}
	return nil
}

func Cancel(ap *models.Appointment, actor uuid.UUID, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrMissingReason
	}
	if !IsParty(ap, actor) {
		return ErrForbidden
	}
	return Transition(ap, StatusCanceled, reason, now)
}

func Complete(ap *models.Appointment, actor uuid.UUID, now time.Time) error {
	if !IsParty(ap, actor) {
		return ErrForbidden
	}
	return Transition(ap, StatusCompleted, "", now)
}

func ConfirmPayment(ap *models.Appointment, actor uuid.UUID, now time.Time) error {
	if !IsParty(ap, actor) {
		return ErrForbidden
	}
	if ap.PaymentStatus != nil && PaymentStatus(*ap.PaymentStatus) == PaymentPaid {
		return ErrAlreadyPaid
	}
	if PaymentMethod(ap.PaymentMethod) == MethodCash && actor != ap.ProviderID {
		return ErrCashRequiresProvider
	}
	if Status(ap.Status) != StatusCompleted {
		return ErrPaymentBeforeCompletion
	}

	paid := string(PaymentPaid)
	ap.PaymentStatus = &paid
	ap.PaidAt = &now
	return nil
}
