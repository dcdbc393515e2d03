package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/dto"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateStatus
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	pay      *ucAppointment.ConfirmPayment
	get      *ucAppointment.GetAppointment
	history  *ucAppointment.AppointmentHistory
	byDate   *ucAppointment.ListAppointmentsByDate
	byMonth  *ucAppointment.ListAppointmentsByMonth
	loc      *time.Location
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateStatus,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	pay *ucAppointment.ConfirmPayment,
	get *ucAppointment.GetAppointment,
	history *ucAppointment.AppointmentHistory,
	byDate *ucAppointment.ListAppointmentsByDate,
	byMonth *ucAppointment.ListAppointmentsByMonth,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		update:   update,
		cancel:   cancel,
		complete: complete,
		pay:      pay,
		get:      get,
		history:  history,
		byDate:   byDate,
		byMonth:  byMonth,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID          uuid.UUID `json:"service_id" binding:"required"`
	ScheduledStartTime time.Time `json:"scheduled_start_time" binding:"required"`
	ScheduledEndTime   time.Time `json:"scheduled_end_time" binding:"required"`
	Description        string    `json:"description" binding:"required"`
	PaymentMethod      string    `json:"payment_method" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type ConfirmPaymentRequest struct {
	PaymentReference string `json:"payment_reference"`
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   middleware.UserID(c),
		Role: middleware.UserRole(c),
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ServiceID:     req.ServiceID,
		ClientID:      middleware.UserID(c),
		Start:         req.ScheduledStartTime,
		End:           req.ScheduledEndTime,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentStatus(ap))
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: id,
		Status:        req.Status,
		Reason:        req.Reason,
		Actor:         actorFrom(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentStatus(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, middleware.UserID(c), req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentStatus(ap))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentStatus(ap))
}

func (h *AppointmentHandler) ConfirmPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// the body is optional for cash payments
	var req ConfirmPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	ap, err := h.pay.Execute(c.Request.Context(), ucAppointment.ConfirmPaymentInput{
		AppointmentID:    id,
		ActorID:          middleware.UserID(c),
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentStatus(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDetail(ap, h.loc))
}

func (h *AppointmentHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	limit, offset := pagination(c)

	logs, total, err := h.history.Execute(c.Request.Context(), id, actorFrom(c), limit, offset)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, logs, total, limit, offset)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, ok := dateQuery(c, "date", h.loc)
	if !ok {
		return
	}

	apps, err := h.byDate.Execute(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}

	apps, err := h.byMonth.Execute(c.Request.Context(), middleware.UserID(c), year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"year":         year,
		"month":        month,
		"appointments": apps,
	})
}
