package middleware

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/brandpulse/configs"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/maheshrc27/brandpulse/pkg/utils"
)

type AuthMiddleware struct {
	s   service.ApiKeyService
	u   service.UserService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, keys service.ApiKeyService, users service.UserService) *AuthMiddleware {
	return &AuthMiddleware{s: keys, u: users, cfg: cfg}
}

// AuthMiddleware authenticates a session cookie or an api_key and resolves
// the caller's business id. Scoped queries only ever see that id.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		apiKey := c.Query("api_key")

		if tokenString == "" && apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing key or session cookie",
			})
		}

		var userID int64

		if apiKey != "" {
			id, err := m.s.GetUserID(c.Context(), apiKey)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			userID = id
		} else {
			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err != nil {
				c.Cookie(&fiber.Cookie{
					Name:   m.cfg.CookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1, // Delete cookie
				})

				log.Printf("Token validation failed: %v", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}

			userID, err = strconv.ParseInt(claims.UserID, 10, 64)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token subject",
				})
			}
		}

		businessID, err := m.u.BusinessID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No business for this account",
			})
		}

		c.Locals("user_id", fmt.Sprintf("%d", userID))
		c.Locals("business_id", fmt.Sprintf("%d", businessID))
		return c.Next()
	}
}
