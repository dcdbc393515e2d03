package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// AppointmentStatusDTO is the reply of every lifecycle operation.
type AppointmentStatusDTO struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
}

type AppointmentListDTO struct {
	ID            uuid.UUID `json:"id"`
	StartTime     time.Time `json:"scheduled_start_time"`
	EndTime       time.Time `json:"scheduled_end_time"`
	Status        string    `json:"status"`
	PaymentStatus *string   `json:"payment_status"`
	Price         float64   `json:"price"`
	ClientName    string    `json:"client_name"`
	ServiceName   string    `json:"service_name"`
}

func NewAppointmentStatus(ap *models.Appointment) AppointmentStatusDTO {
	return AppointmentStatusDTO{
		ID:            ap.ID,
		Status:        ap.Status,
		PaymentStatus: ap.PaymentStatus,
	}
}

func NewAppointmentList(apps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:            ap.ID,
			StartTime:     ap.ScheduledStartTime.In(loc),
			EndTime:       ap.ScheduledEndTime.In(loc),
			Status:        ap.Status,
			PaymentStatus: ap.PaymentStatus,
			Price:         ap.Price,
			ClientName:    ap.Client.Name,
			ServiceName:   ap.Service.Name,
		})
	}
	return out
}

type AppointmentDetailDTO struct {
	ID                 uuid.UUID  `json:"id"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ProviderID         uuid.UUID  `json:"provider_id"`
	ClientID           uuid.UUID  `json:"client_id"`
	StartTime          time.Time  `json:"scheduled_start_time"`
	EndTime            time.Time  `json:"scheduled_end_time"`
	Description        string     `json:"description"`
	PaymentMethod      string     `json:"payment_method"`
	Price              float64    `json:"price"`
	Status             string     `json:"status"`
	PaymentStatus      *string    `json:"payment_status"`
	PaymentReference   *string    `json:"payment_reference,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewAppointmentDetail(ap *models.Appointment, loc *time.Location) AppointmentDetailDTO {
	return AppointmentDetailDTO{
		ID:                 ap.ID,
		ServiceID:          ap.ServiceID,
		ProviderID:         ap.ProviderID,
		ClientID:           ap.ClientID,
		StartTime:          ap.ScheduledStartTime.In(loc),
		EndTime:            ap.ScheduledEndTime.In(loc),
		Description:        ap.Description,
		PaymentMethod:      ap.PaymentMethod,
		Price:              ap.Price,
		Status:             ap.Status,
		PaymentStatus:      ap.PaymentStatus,
		PaymentReference:   ap.PaymentReference,
		CancellationReason: ap.CancellationReason,
		CanceledAt:         ap.CanceledAt,
		CompletedAt:        ap.CompletedAt,
		PaidAt:             ap.PaidAt,
		CreatedAt:          ap.CreatedAt,
	}
}
