package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type MentionHandler struct {
	s      service.MentionService
	ingest service.IngestionService
}

func NewMentionHandler(mentions service.MentionService, ingest service.IngestionService) *MentionHandler {
	return &MentionHandler{s: mentions, ingest: ingest}
}

func (h *MentionHandler) ListMentions(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	mentionID := c.QueryInt("id", 0)

	if mentionID != 0 {
		mention, err := h.s.Get(c.Context(), businessID, int64(mentionID))
		if err != nil {
			return RespondError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"mention": mention,
		})
	}

	label := c.Query("sentiment")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	mentions, err := h.s.List(c.Context(), businessID, label, limit, offset)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mentions": mentions,
	})
}

func (h *MentionHandler) IngestMentions(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	var req transfer.IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if req.AccountID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing account id",
		})
	}

	result, err := h.ingest.IngestAccount(c.Context(), businessID, req.AccountID, req.ForceRefresh)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
