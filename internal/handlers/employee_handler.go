package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"employee-directory/internal/form"
	"employee-directory/internal/models"
	"employee-directory/internal/store"
)

// EmployeeHandler serves the backend contract the directory client
// consumes.
type EmployeeHandler struct {
	Store  store.EmployeeStore
	Logger zerolog.Logger
	Now    func() time.Time
}

func NewEmployeeHandler(s store.EmployeeStore, logger zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{Store: s, Logger: logger, Now: time.Now}
}

// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("list employees failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// POST /api/employees
// Body uses camelCase keys: name, email, phoneNumber, department,
// dateOfJoining, role.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.Draft
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// same rules the form applies, in the same order
	if verr := form.Validate(in, h.Now()); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}

	created, err := h.Store.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Employee with this email already exists"})
			return
		}
		h.Logger.Error().Err(err).Msg("create employee failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add employee"})
		return
	}

	h.Logger.Info().Str("id", string(created.ID)).Msg("employee created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Employee added successfully",
		"id":      created.ID,
	})
}

// GET /health (also verifies DB connectivity)
func (h *EmployeeHandler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "db_error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
