package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "maison-booking/internal/handler/dto/request"
	resdto "maison-booking/internal/handler/dto/response"
	"maison-booking/internal/usecase/commands"
	"maison-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler covers the back-office surface: the weekly availability
// template and the day sheet staff work from.
type ScheduleHandler struct {
	scheduleCommands   commands.ScheduleCommands
	bookingCommands    commands.BookingCommands
	ruleQueries        queries.RuleQueries
	appointmentQueries queries.AppointmentQueries
	location           *time.Location
}

func NewScheduleHandler(
	scheduleCommands commands.ScheduleCommands,
	bookingCommands commands.BookingCommands,
	ruleQueries queries.RuleQueries,
	appointmentQueries queries.AppointmentQueries,
	location *time.Location,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands:   scheduleCommands,
		bookingCommands:    bookingCommands,
		ruleQueries:        ruleQueries,
		appointmentQueries: appointmentQueries,
		location:           location,
	}
}

// @Summary List availability rules
// @Description List the weekly availability template
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RuleResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/availability-rules [get]
func (h *ScheduleHandler) ListRules(c *gin.Context) {
	views, err := h.ruleQueries.WeeklyRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleViews(views))
}

// @Summary Replace availability rules
// @Description Replace the whole weekly availability template atomically
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceRulesRequest true "Weekly rules"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/availability-rules [put]
func (h *ScheduleHandler) ReplaceRules(c *gin.Context) {
	var req reqdto.ReplaceRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rules := make([]commands.WeeklyRule, len(req.Rules))
	for i, r := range req.Rules {
		rules[i] = commands.WeeklyRule{
			DayOfWeek:       r.DayOfWeek,
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			SlotDurationMin: r.SlotDurationMin,
			BreakBetweenMin: r.BreakBetweenMin,
			Enabled:         r.Enabled,
		}
	}

	if err := h.scheduleCommands.ReplaceWeeklyRules(c.Request.Context(), rules); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability rule",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List appointments for a date
// @Description Day sheet: every appointment of one date, cancelled included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/appointments [get]
func (h *ScheduleHandler) ListAppointmentsByDate(c *gin.Context) {
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

	items, err := h.appointmentQueries.ListByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

// @Summary Update appointment status
// @Description Move an appointment through its lifecycle (confirm, complete, cancel)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/appointments/{id}/status [patch]
func (h *ScheduleHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
