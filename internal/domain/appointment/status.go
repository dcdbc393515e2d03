package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus accepts only the five known values.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled, StatusCompleted:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Blocking statuses consume their interval in the provider agenda.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusApproved
}

// Terminal statuses accept no further transition.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCanceled || s == StatusCompleted
}

// BlockingStatuses lists the statuses used by conflict queries.
func BlockingStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved)}
}

// InitialStatus depends on the provider auto-accept flag.
func InitialStatus(autoAccept bool) Status {
	if autoAccept {
		return StatusApproved
	}
	return StatusPending
}

// ===============================
// Payment
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
	MethodCash       PaymentMethod = "CASH"
	MethodPix        PaymentMethod = "PIX"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodCreditCard, MethodDebitCard, MethodCash, MethodPix:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

// Electronic methods can be checked against the payment gateway.
func (m PaymentMethod) Electronic() bool {
	return m != MethodCash
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCanceled},
	StatusApproved: {StatusCanceled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition explains why from -> to is refused.
func CheckTransition(from, to Status) error {
	if CanTransition(from, to) {
		return nil
	}
	if from.Terminal() && from == to {
		switch from {
		case StatusCompleted:
			return ErrAlreadyCompleted
		case StatusCanceled:
			return ErrAlreadyCanceled
		}
	}
	return ErrInvalidTransition
}
