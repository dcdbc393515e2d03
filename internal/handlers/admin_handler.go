package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

type AdminHandler struct {
	deactivate *ucAppointment.DeactivateProvider
}

func NewAdminHandler(deactivate *ucAppointment.DeactivateProvider) *AdminHandler {
	return &AdminHandler{deactivate: deactivate}
}

// DeactivateProvider hides the provider from booking and cancels its future
// agenda.
func (h *AdminHandler) DeactivateProvider(c *gin.Context) {
	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	n, err := h.deactivate.Execute(c.Request.Context(), actorFrom(c), providerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"canceled": n})
}
