package health

import (
	"bom-matcher/core/logger"
	"bom-matcher/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/stock", h.HandleStockCheck)
}

// HandleHealth runs every check.
// @Summary Run All Health Checks
// @Description Checks the report bucket and, when stock is read from the database, the stock table schema.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	ctx := c.Context()
	report := make(map[string]interface{})

	// Storage
	if srep, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = srep
	}

	// Stock
	if !h.service.StockEnabled() {
		report["stock"] = map[string]interface{}{"status": "disabled"}
	} else if srep, err := h.service.CheckStock(); err != nil {
		report["stock"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["stock"] = srep
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally creates the report bucket.
// @Summary Check Storage
// @Description Checks that the report bucket exists. Optionally creates it.
// @Tags health
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists && fix {
		l.Info("Attempting to create missing bucket", zap.String("bucket", report.Bucket))
		if err := h.service.FixStorage(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		report.Exists = true
		report.Status = "fixed"
	}

	return c.JSON(report)
}

// HandleStockCheck checks the stock table schema.
// @Summary Check Stock Table
// @Description Checks that the stock table has the configured part and quantity columns with compatible types.
// @Tags health
// @Produce json
// @Success 200 {object} checks.StockReport "Stock Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/stock [get]
func (h *Handler) HandleStockCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStock()
	if err != nil {
		l.Error("Stock table check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
