package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DarshanCHMSR/search-engine/internal/auth/domain"
	"github.com/DarshanCHMSR/search-engine/internal/auth/service"
	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
	"github.com/DarshanCHMSR/search-engine/internal/logging"
)

const principalKey = "principal"

// AuthGate guards every protected route. Per request it moves through
// NoToken -> TokenPresent -> Verified|Rejected: the token is taken from the
// Authorization header (cookie fallback), verified, and the referenced user
// must exist and be active before it is attached to the request as the
// principal.
type AuthGate struct {
	tokens service.TokenGenerator
	users  domain.UserRepository
	log    logging.Logger
}

func NewAuthGate(tokens service.TokenGenerator, users domain.UserRepository, log logging.Logger) *AuthGate {
	return &AuthGate{tokens: tokens, users: users, log: log}
}

// ExtractToken pulls the bearer token from the Authorization header, falling
// back to the `token` cookie when the header is absent.
func ExtractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Cookies("token")
}

func (g *AuthGate) RequireAuth(c *fiber.Ctx) error {
	token := ExtractToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No token provided",
		})
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, apperrors.ErrTokenExpired) {
			msg = "Token expired"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
	}

	user, err := g.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		g.log.Error(c.Context(), "auth gate: user lookup failed", "user_id", claims.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error during authentication",
		})
	}

	if user == nil || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token or user account deactivated",
		})
	}

	c.Locals(principalKey, user)

	return c.Next()
}

// Principal returns the authenticated user attached by RequireAuth.
func Principal(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(principalKey).(*domain.User)
	return user
}
