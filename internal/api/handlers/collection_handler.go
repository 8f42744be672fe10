package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/engagement-api/internal/service"
	"github.com/maheshrc27/engagement-api/internal/transfer"
)

type CollectionHandler struct {
	s service.CollectionService
}

func NewCollectionHandler(service service.CollectionService) *CollectionHandler {
	return &CollectionHandler{s: service}
}

func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var req transfer.CollectionCreation
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	collection, err := h.s.CreateCollection(c.Context(), req.Name(), req.PostIDs)
	if err != nil {
		return serviceError(c, err, "Unable to create collection")
	}

	return c.Status(fiber.StatusOK).JSON(collection)
}
