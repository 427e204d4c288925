package api

import (
	"net/http"
	"time"

	resdto "maison-booking/internal/handler/dto/response"
	"maison-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	services     queries.ServiceQueries
	availability queries.AvailabilityQueries
	location     *time.Location
}

func NewConsultationHandler(
	services queries.ServiceQueries,
	availability queries.AvailabilityQueries,
	location *time.Location,
) *ConsultationHandler {
	return &ConsultationHandler{
		services:     services,
		availability: availability,
		location:     location,
	}
}

// @Summary List consultation services
// @Description List bookable consultation types offered in the boutique
// @Tags consultations
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /consultations/services [get]
func (h *ConsultationHandler) ListServices(c *gin.Context) {
	views, err := h.services.ListEnabled(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get slot availability
// @Description List every slot of the requested date with its availability
// @Tags consultations
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Router /consultations/slots [get]
func (h *ConsultationHandler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date requise",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date invalide",
		})
		return
	}

	slots, err := h.availability.SlotsForDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(dateStr, slots))
}
