package handlers

import (
	"errors"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/engagement-api/internal/service"
)

// NewValidator reports field errors under their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ParamInt64(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func validationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

// serviceError maps service failures to responses. Anything unrecognised is
// logged and answered with fallback as a 500.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnsupportedFileType):
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrDuplicateSKU), errors.Is(err, service.ErrUnknownReference):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrStorageNotConfigured):
		return errorJSON(c, fiber.StatusServiceUnavailable, err.Error())
	}

	slog.Error(err.Error())
	return errorJSON(c, fiber.StatusInternalServerError, fallback)
}
