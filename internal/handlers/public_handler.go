package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *ucAppointment.GetProviderAvailability
	loc          *time.Location
}

func NewPublicHandler(
	availability *ucAppointment.GetProviderAvailability,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		loc:          loc,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	date, ok := dateQuery(c, "date", h.loc)
	if !ok {
		return
	}

	services, err := h.availability.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":     date.Format("2006-01-02"),
		"services": services,
	})
}
