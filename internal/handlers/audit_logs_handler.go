package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogLister interface {
	List(ctx context.Context, f audit.Filter, limit, offset int) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogLister
	loc  *time.Location
}

func NewAuditLogsHandler(logs AuditLogLister, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	if from := c.Query("from"); from != "" {
		d, err := timezone.ParseDate(from, h.loc)
		if err != nil {
			httperr.FromError(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		f.From = d
	}

	if to := c.Query("to"); to != "" {
		d, err := timezone.ParseDate(to, h.loc)
		if err != nil {
			httperr.FromError(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		f.To = d.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), f, limit, offset)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, logs, total, limit, offset)
}
