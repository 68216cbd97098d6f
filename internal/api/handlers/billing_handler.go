package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/brandpulse/configs"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/maheshrc27/brandpulse/internal/transfer"
	"github.com/maheshrc27/brandpulse/pkg/utils"
)

type BillingHandler struct {
	s   service.BillingService
	cfg config.Config
}

func NewBillingHandler(cfg config.Config, service service.BillingService) *BillingHandler {
	return &BillingHandler{s: service, cfg: cfg}
}

// HandleWebhook verifies the provider signature on the raw body before any
// parsing. Unsigned or stale deliveries are rejected outright.
func (h *BillingHandler) HandleWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("Webhook-Signature")

	err := utils.VerifyWebhookSignature(h.cfg.BillingWebhookSecret, signature, body, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid webhook signature",
		})
	}

	var event transfer.BillingEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse event",
		})
	}

	if err := h.s.HandleEvent(c.Context(), &event); err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"received": true,
	})
}
