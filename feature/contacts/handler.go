package contacts

import (
	"roster-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for contacts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the contact routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/contacts")
	group.Get("/count", h.HandleGetContactCount)
}

// HandleGetContactCount returns the remote contact count.
// @Summary Get Contact Count
// @Description Number of contacts the SIS query currently matches. Probe for connectivity and query health.
// @Tags contacts
// @Produce json
// @Success 200 {object} map[string]any "Contact Count"
// @Failure 502 {object} map[string]string "SIS unreachable"
// @Router /contacts/count [get]
func (h *Handler) HandleGetContactCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.Count(c.Context())
	if err != nil {
		l.Error("Contact count probe failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"entity": "contacts",
		"count":  count,
	})
}
