package handlers

import (
	"net/http"
	"sort"
	"strings"

	"carebook/models"
	"carebook/services/catalog"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the public doctor catalog and the admin mutations.
type DoctorHandler struct {
	Catalog catalog.Store
}

func NewDoctorHandler(cat catalog.Store) *DoctorHandler {
	return &DoctorHandler{Catalog: cat}
}

// ListDoctorsHandler handles GET /api/doctors. Filtering and the
// rating-descending sort are view concerns layered on the unfiltered store
// listing: `specialization` and `location` match exactly, `q` searches name
// and specialization.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Catalog.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load doctors", err.Error())
		return
	}

	specialization := c.Query("specialization")
	location := c.Query("location")
	query := strings.ToLower(c.Query("q"))

	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doc := range doctors {
		if specialization != "" && doc.Specialization != specialization {
			continue
		}
		if location != "" && doc.Location != location {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(doc.Name), query) &&
			!strings.Contains(strings.ToLower(doc.Specialization), query) {
			continue
		}
		filtered = append(filtered, doc)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})

	c.JSON(http.StatusOK, gin.H{"doctors": filtered})
}

// AddDoctorHandler handles POST /api/admin/doctors.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var input catalog.DoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid add doctor request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doc, err := h.Catalog.AddDoctor(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// RemoveDoctorHandler handles DELETE /api/admin/doctors/:id. Appointments
// referencing the doctor are left in place.
func (h *DoctorHandler) RemoveDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.RemoveDoctor(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor removed"})
}
