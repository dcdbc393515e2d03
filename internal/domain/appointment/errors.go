package appointment

import "github.com/BruksfildServices01/booking-core/internal/httperr"

var (
	ErrClientNotFound      = httperr.ErrBusiness("client_not_found")
	ErrServiceNotFound     = httperr.ErrBusiness("service_not_found")
	ErrProviderNotFound    = httperr.ErrBusiness("provider_not_found")
	ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")

	ErrSelfBooking          = httperr.ErrBusiness("self_booking")
	ErrClosedDay            = httperr.ErrBusiness("closed_day")
	ErrUnavailableDay       = httperr.ErrBusiness("unavailable_day")
	ErrInvalidRange         = httperr.ErrBusiness("invalid_range")
	ErrOutsideWorkingHours  = httperr.ErrBusiness("outside_working_hours")
	ErrStartInBreak         = httperr.ErrBusiness("start_in_break")
	ErrEndInBreak           = httperr.ErrBusiness("end_in_break")
	ErrSpansBreak           = httperr.ErrBusiness("spans_break")
	ErrDurationTooShort     = httperr.ErrBusiness("duration_too_short")
	ErrMisalignedSlot       = httperr.ErrBusiness("misaligned_slot")
	ErrStartInPast          = httperr.ErrBusiness("start_in_past")
	ErrInvalidDescription   = httperr.ErrBusiness("invalid_description")
	ErrInvalidPaymentMethod = httperr.ErrBusiness("invalid_payment_method")
	ErrInvalidStatus        = httperr.ErrBusiness("invalid_status")
	ErrMissingReason        = httperr.ErrBusiness("missing_reason")
	ErrMissingPaymentRef    = httperr.ErrBusiness("missing_payment_reference")
	ErrReasonTooLong        = httperr.ErrBusiness("reason_too_long")
	ErrPaymentRefTooLong    = httperr.ErrBusiness("payment_reference_too_long")

	ErrSlotConflict    = httperr.ErrBusiness("slot_conflict")
	ErrPaymentRefInUse = httperr.ErrBusiness("payment_reference_in_use")

	ErrForbidden            = httperr.ErrBusiness("forbidden")
	ErrCashRequiresProvider = httperr.ErrBusiness("cash_requires_provider")

	ErrInvalidTransition       = httperr.ErrBusiness("invalid_transition")
	ErrAlreadyCompleted        = httperr.ErrBusiness("already_completed")
	ErrAlreadyCanceled         = httperr.ErrBusiness("already_canceled")
	ErrAlreadyPaid             = httperr.ErrBusiness("already_paid")
	ErrPaymentBeforeCompletion = httperr.ErrBusiness("payment_before_completion")
	ErrPaymentNotApproved      = httperr.ErrBusiness("payment_not_approved")
	ErrStaleAppointment        = httperr.ErrBusiness("stale_appointment")
)
