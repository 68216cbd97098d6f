package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type AnalysisHandler struct {
	s service.AnalysisService
}

func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{s: service}
}

// RunAnalysis accepts either explicit mention ids or a batch size; when
// both are absent it sweeps a default-sized batch of unanalyzed mentions.
func (h *AnalysisHandler) RunAnalysis(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	var req transfer.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	var (
		result *transfer.AnalyzeResult
		err    error
	)
	if len(req.MentionIDs) > 0 {
		result, err = h.s.AnalyzeByIDs(c.Context(), businessID, req.MentionIDs)
	} else {
		result, err = h.s.AnalyzeBatch(c.Context(), businessID, req.BatchSize)
	}
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AnalysisHandler) AnalyzeText(c *fiber.Ctx) error {
	var req transfer.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing text",
		})
	}

	result, err := h.s.AnalyzeText(c.Context(), req.Text)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
