package price

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"catalog-sync/core/catalog"
	"catalog-sync/core/logger"
	"catalog-sync/core/validation"
)

// Handler handles HTTP requests for price updates.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the price update route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/price-update", h.HandlePriceUpdate)
}

// HandlePriceUpdate accepts one JSON batch of price updates and returns
// the per-product result map. Validation failures return a structured
// violation list with a client error status before any reconciliation.
func (h *Handler) HandlePriceUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validation.Violations{{
				Path:    "",
				Code:    validation.CodeInvalidType,
				Message: "request body must be a JSON price update batch",
			}},
		})
	}

	versionID := c.Get(catalog.VersionHeader)
	if versionID == "" {
		versionID = catalog.LiveVersion
	}

	results, err := h.service.UpdatePrices(c.Context(), versionID, req)
	if err != nil {
		var violations validation.Violations
		if errors.As(err, &violations) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": violations,
			})
		}
		l.Error("Price update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"results": results})
}
