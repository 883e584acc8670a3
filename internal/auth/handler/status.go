package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
)

// StatusFor maps service-level failures to HTTP status codes. Anything
// unrecognized is an internal failure.
func StatusFor(err error) int {
	if _, ok := apperrors.AsValidation(err); ok {
		return fiber.StatusBadRequest
	}

	switch {
	case errors.Is(err, apperrors.ErrEmptyQuery),
		errors.Is(err, apperrors.ErrIncorrectPassword):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenMissing),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUserDeactivated):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrEntryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrEmailAlreadyInUse),
		errors.Is(err, apperrors.ErrUsernameAlreadyInUse):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail writes the error response for err. Internal failures are masked unless
// the handler was built in development mode.
func Fail(c *fiber.Ctx, err error, development bool) error {
	status := StatusFor(err)

	if verr, ok := apperrors.AsValidation(err); ok {
		return c.Status(status).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	}

	if status == fiber.StatusInternalServerError && !development {
		return c.Status(status).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
