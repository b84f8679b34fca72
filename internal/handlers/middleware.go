package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"timetrack-service/internal/models"
	"timetrack-service/internal/services"
)

const currentUserKey = "current_user"

// AuthRequired returns a middleware that resolves the Authorization bearer
// token to a user and stores it in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Authorization required",
			})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		if token == auth {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid authorization format",
			})
		}

		user, err := authService.GetUserByToken(token)
		if err != nil {
			log.Printf("Rejected token: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid or expired token",
			})
		}

		c.Locals(currentUserKey, user)
		c.Locals("session_token", token)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
