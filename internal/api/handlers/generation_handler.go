package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type GenerationHandler struct {
	s service.GenerationService
}

func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{s: service}
}

func (h *GenerationHandler) GeneratePosts(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	var req transfer.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	result, err := h.s.Generate(c.Context(), businessID, &req)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *GenerationHandler) ListGenerated(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	status := c.Query("status")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	posts, err := h.s.List(c.Context(), businessID, status, limit, offset)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
	})
}
