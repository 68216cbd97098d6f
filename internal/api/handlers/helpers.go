package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandpulse/internal/ai"
	"github.com/maheshrc27/brandpulse/internal/service"
)

func GetUserID(c *fiber.Ctx) int64 {
	userID, _ := strconv.Atoi(c.Locals("user_id").(string))
	return int64(userID)
}

func GetBusinessID(c *fiber.Ctx) int64 {
	businessID, _ := strconv.Atoi(c.Locals("business_id").(string))
	return int64(businessID)
}

// RespondError maps service errors onto HTTP statuses. Anything not
// recognized is a 500 with a generic message.
func RespondError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrAccountInactive),
		errors.Is(err, service.ErrTokenExpired):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrQuotaExceeded):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrLimitReached):
		status = fiber.StatusTooManyRequests
	case errors.Is(err, service.ErrUpstreamFetch),
		errors.Is(err, ai.ErrUnavailable),
		errors.Is(err, ai.ErrInvalidOutput):
		status = fiber.StatusBadGateway
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
