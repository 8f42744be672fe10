package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/engagement-api/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) TopViewedPosts(c *fiber.Ctx) error {
	tenantID, err := ParamInt64(c, "tenant_id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "tenant_id must be an integer")
	}

	posts, err := h.s.TopViewedPosts(c.Context(), tenantID)
	if err != nil {
		return serviceError(c, err, "Unable to rank posts")
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *AnalyticsHandler) TopViewedProducts(c *fiber.Ctx) error {
	tenantID, err := ParamInt64(c, "tenant_id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "tenant_id must be an integer")
	}

	products, err := h.s.TopViewedProducts(c.Context(), tenantID)
	if err != nil {
		return serviceError(c, err, "Unable to rank products")
	}

	return c.Status(fiber.StatusOK).JSON(products)
}
