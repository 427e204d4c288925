package api

import (
	"errors"
	"net/http"
	"time"

	"maison-booking/internal/domain/user"
	reqdto "maison-booking/internal/handler/dto/request"
	resdto "maison-booking/internal/handler/dto/response"
	"maison-booking/internal/handler/middleware"
	"maison-booking/internal/usecase/commands"
	"maison-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	bookings           commands.BookingCommands
	appointmentQueries queries.AppointmentQueries
	location           *time.Location
}

func NewAppointmentHandler(
	bookings commands.BookingCommands,
	appointmentQueries queries.AppointmentQueries,
	location *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookings:           bookings,
		appointmentQueries: appointmentQueries,
		location:           location,
	}
}

// @Summary Book appointment
// @Description Book a consultation slot for the current customer
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /consultations/bookings [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date invalide",
		})
		return
	}

	cmd := commands.BookAppointment{
		Date:       date,
		Time:       req.Time,
		ServiceID:  req.ServiceID,
		CouponCode: req.GetCouponCode(),
		Note:       req.GetNote(),
	}

	view, err := h.bookings.Book(c.Request.Context(), customerID, cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrServiceNotBookable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Service is not bookable",
			})
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, commands.ErrInvalidCoupon):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or expired coupon",
			})
		case errors.Is(err, commands.ErrInvalidSlotTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot time",
			})
		case errors.Is(err, commands.ErrInvalidNote):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Note is too long",
			})
		case errors.Is(err, commands.ErrSlotNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot is not offered on this date",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary List my appointments
// @Description List all appointments of the current customer
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /consultations/bookings [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.appointmentQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

// @Summary Get appointment
// @Description Get one appointment by ID; customers can only see their own
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /consultations/bookings/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Customers only see their own bookings; a foreign ID reads as absent.
	if role, _ := middleware.GetUserRole(c); role == user.RoleCustomer {
		customerID, _ := middleware.GetUserID(c)
		if view.CustomerID != customerID {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
			return
		}
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Cancel an appointment, freeing its slot
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /consultations/bookings/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	actorRole, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.bookings.Cancel(c.Request.Context(), actorID, actorRole, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound),
			errors.Is(err, commands.ErrNotAppointmentOwner):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Completed appointments cannot be cancelled",
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
