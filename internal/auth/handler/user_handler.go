package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DarshanCHMSR/search-engine/internal/auth/dto"
	"github.com/DarshanCHMSR/search-engine/internal/auth/service"
)

// UserHandler serves the account-management endpoints. All of them run behind
// the auth gate and operate on the request principal.
type UserHandler struct {
	userService *service.UserService
	development bool
}

func NewUserHandler(userService *service.UserService, development bool) *UserHandler {
	return &UserHandler{userService: userService, development: development}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserOutput(Principal(c)),
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.UpdateProfile(c.Context(), Principal(c).ID, input)
	if err != nil {
		return Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    dto.NewUserOutput(user),
	})
}

func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	var input dto.UpdatePreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	prefs, err := h.userService.UpdatePreferences(c.Context(), Principal(c).ID, input)
	if err != nil {
		return Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Preferences updated successfully",
		"preferences": prefs,
	})
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ChangePassword(c.Context(), Principal(c).ID, input); err != nil {
		return Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password changed successfully",
	})
}

// DeactivateAccount soft-deletes the account and clears the auth cookie.
func (h *UserHandler) DeactivateAccount(c *fiber.Ctx) error {
	if err := h.userService.Deactivate(c.Context(), Principal(c).ID); err != nil {
		return Fail(c, err, h.development)
	}

	clearTokenCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deactivated successfully",
	})
}

func (h *UserHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.userService.Stats(c.Context(), Principal(c).ID)
	if err != nil {
		return Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"stats": stats,
	})
}
