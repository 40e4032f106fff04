package students

import (
	"roster-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for students.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the student routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/students")
	group.Get("/count", h.HandleGetStudentCount)
}

// HandleGetStudentCount returns the remote student count.
// @Summary Get Student Count
// @Description Number of students the SIS query currently matches. Probe for connectivity and query health.
// @Tags students
// @Produce json
// @Success 200 {object} map[string]any "Student Count"
// @Failure 502 {object} map[string]string "SIS unreachable"
// @Router /students/count [get]
func (h *Handler) HandleGetStudentCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.Count(c.Context())
	if err != nil {
		l.Error("Student count probe failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"entity": "students",
		"count":  count,
	})
}
