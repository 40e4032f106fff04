package runs

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"roster-sync/core/logger"
	"roster-sync/core/sis"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the run routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Post("/", h.HandleTriggerRun)
	group.Get("/", h.HandleListRuns)
	group.Get("/latest", h.HandleGetLatestReport)
	group.Get("/:id", h.HandleGetRun)
}

// HandleTriggerRun starts a reconciliation run and returns its full report.
// @Summary Trigger Reconciliation Run
// @Description Imports the CSV drop, reconciles students and contacts against the SIS and returns the change report. Concurrent triggers share one run.
// @Tags runs
// @Produce json
// @Success 200 {object} ChangeReport "Change Report"
// @Failure 502 {object} map[string]string "SIS unreachable"
// @Failure 500 {object} map[string]string "Run failed"
// @Router /runs [post]
func (h *Handler) HandleTriggerRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Run trigger failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		var reqErr *sis.RequestError
		if errors.As(err, &reqErr) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleListRuns returns the run history, most recent first.
// @Summary List Runs
// @Description Run history summaries from the database, most recent first.
// @Tags runs
// @Produce json
// @Param limit query int false "Maximum rows (default 20, cap 100)"
// @Success 200 {array} RunRecord "Run history"
// @Failure 503 {object} map[string]string "No database configured"
// @Router /runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	store := h.service.History()
	if store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "run history requires a database",
		})
	}

	recs, err := store.ListRuns(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		l.Error("Run history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(recs)
}

// HandleGetLatestReport returns the most recent full change report.
// @Summary Get Latest Report
// @Description The full change report of the most recent successful run in this process.
// @Tags runs
// @Produce json
// @Success 200 {object} ChangeReport "Change Report"
// @Failure 404 {object} map[string]string "No completed run yet"
// @Router /runs/latest [get]
func (h *Handler) HandleGetLatestReport(c *fiber.Ctx) error {
	report, ok := h.service.LatestReport()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no completed run yet",
		})
	}
	return c.JSON(report)
}

// HandleGetRun returns one run-history row by run id.
// @Summary Get Run
// @Description One run history summary by its run id.
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} RunRecord "Run summary"
// @Failure 404 {object} map[string]string "Unknown run id"
// @Failure 503 {object} map[string]string "No database configured"
// @Router /runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	store := h.service.History()
	if store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "run history requires a database",
		})
	}

	rec, err := store.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown run id",
			})
		}
		l.Error("Run lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rec)
}
