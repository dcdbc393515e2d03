package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// --------------------------------------------------
// Parâmetros de rota e query
// --------------------------------------------------

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// dateQuery reads a required YYYY-MM-DD query parameter as midnight in loc.
func dateQuery(c *gin.Context, name string, loc *time.Location) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return time.Time{}, false
	}

	date, err := timezone.ParseDate(raw, loc)
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_date"))
		return time.Time{}, false
	}
	return date, true
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, "missing_"+name, "Parâmetro obrigatório: "+name+".")
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_"+name))
		return 0, false
	}
	return v, true
}

func pagination(c *gin.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return limit, (page - 1) * limit
}
