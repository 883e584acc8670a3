package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DarshanCHMSR/search-engine/internal/auth/dto"
	"github.com/DarshanCHMSR/search-engine/internal/auth/service"
)

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenGenerator
	development bool
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenGenerator, development bool) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		development: development,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, token, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return Fail(c, err, h.development)
	}

	h.setTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    dto.NewUserOutput(user),
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, token, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return Fail(c, err, h.development)
	}

	h.setTokenCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    dto.NewUserOutput(user),
		"token":   token,
	})
}

// Logout clears the cookie. The token itself stays valid until expiry; there
// is no revocation state to update.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearTokenCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful. Please remove the token from client-side storage.",
	})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.userService.Profile(c.Context(), Principal(c).ID)
	if err != nil {
		return Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.tokens.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
