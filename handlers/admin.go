package handlers

import (
	"net/http"

	"carebook/models"
	"carebook/services/catalog"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administration panel endpoints.
type AdminHandler struct {
	Catalog catalog.Store
}

func NewAdminHandler(cat catalog.Store) *AdminHandler {
	return &AdminHandler{Catalog: cat}
}

// ListUsersHandler handles GET /api/admin/users: demo identities first, then
// every registered identity, credential-stripped.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Catalog.ListUsers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Catalog.ListAppointments(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CompleteAppointmentHandler handles PUT /api/admin/appointments/:id/complete.
func (h *AdminHandler) CompleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.CompleteAppointment(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to complete appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment completed"})
}

// StatsHandler handles GET /api/admin/stats with the overview counts shown on
// the admin dashboard.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	doctors, err := h.Catalog.ListDoctors(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load stats", err.Error())
		return
	}
	appts, err := h.Catalog.ListAppointments(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load stats", err.Error())
		return
	}
	users, err := h.Catalog.ListUsers(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load stats", err.Error())
		return
	}

	var confirmed, cancelled, completed int
	for _, appt := range appts {
		switch appt.Status {
		case models.StatusConfirmed:
			confirmed++
		case models.StatusCancelled:
			cancelled++
		case models.StatusCompleted:
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalDoctors":      len(doctors),
		"totalUsers":        len(users),
		"totalAppointments": len(appts),
		"confirmed":         confirmed,
		"cancelled":         cancelled,
		"completed":         completed,
	})
}
