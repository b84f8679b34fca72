package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"timetrack-service/internal/localization"
	"timetrack-service/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type settingsRequest struct {
	Timezone *string `json:"timezone"`
	DarkMode *bool   `json:"dark_mode"`
}

// Register creates a new user account
// @Summary Register a new user
// @Description Create a user account and open a login session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body registerRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User created, session token returned"
// @Failure 400 {object} map[string]interface{} "Bad request - Missing or invalid fields"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing registration data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Username, email, and password are required",
		})
	}

	user, session, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		}
		log.Printf("Error registering user %q: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to register user",
			"details": err.Error(),
		})
	}

	log.Printf("User registered: %s", user.Username)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":       user,
		"token":      session.Token,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	})
}

// Login authenticates a user
// @Summary Log in
// @Description Verify credentials and open a login session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Session token returned"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	user, session, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid credentials",
			})
		}
		log.Printf("Error logging in user %q: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to log in",
			"details": err.Error(),
		})
	}

	log.Printf("User logged in: %s", user.Username)
	return c.JSON(fiber.Map{
		"user":       user,
		"token":      session.Token,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout ends the current session
// @Summary Log out
// @Description Delete the session behind the presented bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Logged out"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("session_token").(string)
	if err := h.authService.Logout(token); err != nil {
		log.Printf("Error deleting session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to log out",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the current user
// @Summary Get the current user
// @Description Return the account behind the presented bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(CurrentUser(c))
}

// UpdateSettings updates timezone and dark mode
// @Summary Update user settings
// @Description Update the current user's timezone (IANA zone name) and dark mode flag
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body settingsRequest true "Settings to change"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} map[string]interface{} "Bad request - Unknown timezone"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/settings [put]
func (h *AuthHandler) UpdateSettings(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing settings data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	if err := h.authService.UpdateSettings(user, req.Timezone, req.DarkMode); err != nil {
		if errors.Is(err, localization.ErrUnknownTimezone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": "Unknown timezone",
				"details": err.Error(),
			})
		}
		log.Printf("Error updating settings for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update settings",
			"details": err.Error(),
		})
	}

	log.Printf("Settings updated for user %s", user.Username)
	return c.JSON(user)
}
