package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandpulse/internal/service"
)

type AccountHandler struct {
	s service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{s: service}
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	accounts, err := h.s.List(c.Context(), businessID)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accounts": accounts,
	})
}

func (h *AccountHandler) DisconnectAccount(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	accountID := c.QueryInt("id", 0)
	if accountID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing account id",
		})
	}

	if err := h.s.Disconnect(c.Context(), businessID, int64(accountID)); err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account disconnected",
	})
}
