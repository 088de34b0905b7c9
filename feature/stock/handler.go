package stock

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"catalog-sync/core/catalog"
	"catalog-sync/core/logger"
	"catalog-sync/core/validation"
)

// Handler handles HTTP requests for stock updates.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the stock update route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/stock-update", h.HandleStockUpdate)
}

// HandleStockUpdate accepts one JSON batch of stock updates and returns
// the per-product result map. A batch against a non-live partition
// succeeds with an empty result map.
func (h *Handler) HandleStockUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validation.Violations{{
				Path:    "",
				Code:    validation.CodeInvalidType,
				Message: "request body must be a JSON stock update batch",
			}},
		})
	}

	versionID := c.Get(catalog.VersionHeader)
	if versionID == "" {
		versionID = catalog.LiveVersion
	}

	results, err := h.service.UpdateStock(c.Context(), versionID, req)
	if err != nil {
		var violations validation.Violations
		if errors.As(err, &violations) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": violations,
			})
		}
		l.Error("Stock update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"results": results})
}
