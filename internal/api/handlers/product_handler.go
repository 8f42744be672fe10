package handlers

import (
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/engagement-api/internal/service"
	"github.com/maheshrc27/engagement-api/internal/transfer"
)

type ProductHandler struct {
	s  service.ProductService
	as service.AssetService
	v  *validator.Validate
}

func NewProductHandler(service service.ProductService, assets service.AssetService, v *validator.Validate) *ProductHandler {
	return &ProductHandler{s: service, as: assets, v: v}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req transfer.ProductCreation
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}
	if err := h.v.Struct(&req); err != nil {
		return validationError(c, err)
	}

	product, err := h.s.CreateProduct(c.Context(), &req)
	if err != nil {
		return serviceError(c, err, "Unable to create product")
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) UploadProductImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error(err.Error())
		return errorJSON(c, fiber.StatusBadRequest, "Unable to read file")
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		slog.Error(err.Error())
		return errorJSON(c, fiber.StatusBadRequest, "Unable to read file")
	}

	url, err := h.as.UploadProductImage(c.Context(), body)
	if err != nil {
		return serviceError(c, err, "Unable to upload image")
	}

	return c.Status(fiber.StatusCreated).JSON(transfer.ProductImageUpload{URL: url})
}
