package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandpulse/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) DailySentiment(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid from date, expected YYYY-MM-DD",
			})
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid to date, expected YYYY-MM-DD",
			})
		}
		to = parsed
	}
	if from.After(to) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "from must not be after to",
		})
	}

	days, err := h.s.Range(c.Context(), businessID, from, to)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"days": days,
	})
}

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	days := c.QueryInt("days", 7)

	overview, err := h.s.Overview(c.Context(), businessID, days)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(overview)
}
