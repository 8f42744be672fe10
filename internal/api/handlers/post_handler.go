package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/engagement-api/internal/service"
	"github.com/maheshrc27/engagement-api/internal/transfer"
)

type PostHandler struct {
	s service.PostService
	v *validator.Validate
}

func NewPostHandler(service service.PostService, v *validator.Validate) *PostHandler {
	return &PostHandler{s: service, v: v}
}

func (h *PostHandler) GetPosts(c *fiber.Ctx) error {
	tenantID, err := ParamInt64(c, "tenant_id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "tenant_id must be an integer")
	}

	posts, err := h.s.GetPosts(c.Context(), tenantID)
	if err != nil {
		return serviceError(c, err, "Unable to list posts")
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var req transfer.PostCreation
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}
	if err := h.v.Struct(&req); err != nil {
		return validationError(c, err)
	}

	post, err := h.s.CreatePost(c.Context(), &req)
	if err != nil {
		return serviceError(c, err, "Unable to create post")
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) MapProducts(c *fiber.Ctx) error {
	postID, err := ParamInt64(c, "post_id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "post_id must be an integer")
	}

	var req transfer.PostProductsMapping
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}
	if err := h.v.Struct(&req); err != nil {
		return validationError(c, err)
	}

	mappings, err := h.s.MapProducts(c.Context(), postID, req.ProductIDs)
	if err != nil {
		return serviceError(c, err, "Unable to map products")
	}

	return c.Status(fiber.StatusCreated).JSON(mappings)
}

func (h *PostHandler) CreatePostContent(c *fiber.Ctx) error {
	var req transfer.PostContentCreation
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}
	if err := h.v.Struct(&req); err != nil {
		return validationError(c, err)
	}

	content, err := h.s.CreatePostContent(c.Context(), &req)
	if err != nil {
		return serviceError(c, err, "Unable to create post content")
	}

	return c.Status(fiber.StatusCreated).JSON(content)
}

func (h *PostHandler) ListStoryContent(c *fiber.Ctx) error {
	storyID, err := ParamInt64(c, "story_id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "story_id must be an integer")
	}

	contents, err := h.s.ListStoryContent(c.Context(), storyID)
	if err != nil {
		return serviceError(c, err, "Unable to list post content")
	}

	return c.Status(fiber.StatusOK).JSON(contents)
}
