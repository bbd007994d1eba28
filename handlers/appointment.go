package handlers

import (
	"errors"
	"net/http"
	"time"

	"carebook/middleware"
	"carebook/models"
	"carebook/services/catalog"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Bookings may be made from today up to this many days ahead.
const bookingWindowDays = 30

// AppointmentHandler serves booking and appointment listing for the
// authenticated identity.
type AppointmentHandler struct {
	Catalog catalog.Store
}

func NewAppointmentHandler(cat catalog.Store) *AppointmentHandler {
	return &AppointmentHandler{Catalog: cat}
}

// ListMineHandler handles GET /api/appointments. The optional
// `bucket=upcoming|past` query applies the dashboard rule: upcoming means the
// date is today or later and the status is not cancelled; everything else,
// including every cancelled appointment, is past.
func (h *AppointmentHandler) ListMineHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	appts, err := h.Catalog.ListAppointmentsForUser(c.Request.Context(), identity.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load appointments", err.Error())
		return
	}

	switch c.Query("bucket") {
	case "upcoming":
		appts = filterAppointments(appts, true)
	case "past":
		appts = filterAppointments(appts, false)
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func filterAppointments(appts []models.Appointment, upcoming bool) []models.Appointment {
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.Local)

	result := make([]models.Appointment, 0, len(appts))
	for _, appt := range appts {
		date, err := time.ParseInLocation(dateLayout, appt.Date, time.Local)
		isUpcoming := err == nil && !date.Before(today) && appt.Status != models.StatusCancelled
		if isUpcoming == upcoming {
			result = append(result, appt)
		}
	}
	return result
}

// BookHandler handles POST /api/appointments. The slot-label and booking
// window checks live here, on the consumer side; the store only guards
// against double-booking.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	var req struct {
		DoctorID    string `json:"doctorId" binding:"required"`
		Date        string `json:"date" binding:"required"`
		Time        string `json:"time" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doctor, err := h.Catalog.GetDoctor(c.Request.Context(), req.DoctorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	slotKnown := false
	for _, label := range doctor.AvailableTimes {
		if label == req.Time {
			slotKnown = true
			break
		}
	}
	if !slotKnown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected time is not offered by this doctor"})
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if date.Before(today) || date.After(today.AddDate(0, 0, bookingWindowDays)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be within the next 30 days"})
		return
	}

	appt := models.Appointment{
		ID:                   uuid.New().String(),
		UserID:               identity.ID,
		DoctorID:             doctor.ID,
		DoctorName:           doctor.Name,
		DoctorSpecialization: doctor.Specialization,
		Date:                 req.Date,
		Time:                 req.Time,
		Description:          req.Description,
		Status:               models.StatusConfirmed,
		CreatedAt:            time.Now(),
	}

	created, err := h.Catalog.AddAppointment(c.Request.Context(), appt)
	if err != nil {
		var slotErr *catalog.SlotTakenError
		if errors.As(err, &slotErr) {
			c.JSON(http.StatusConflict, gin.H{"error": "This time slot is already booked"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelHandler handles PUT /api/appointments/:id/cancel. Owners may cancel
// their own appointments; admins may cancel any.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	id := c.Param("id")
	if identity.Role != models.RoleAdmin {
		appts, err := h.Catalog.ListAppointmentsForUser(c.Request.Context(), identity.ID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Cancellation failed", err.Error())
			return
		}
		owned := false
		for _, appt := range appts {
			if appt.ID == id {
				owned = true
				break
			}
		}
		if !owned {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
			return
		}
	}

	if err := h.Catalog.CancelAppointment(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Cancellation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
