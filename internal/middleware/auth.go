package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-browse-server/internal/auth"
)

// ClaimsLocal is the request-local key under which verified token claims
// are stored.
const ClaimsLocal = "auth_claims"

// RequireToken verifies the Authorization bearer token and stores its
// claims in request locals. Only routes that opt in use this; browse and
// watchlist routes are deliberately left open.
func RequireToken(tokens *auth.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid Authorization header format, expected 'Bearer <token>'",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(ClaimsLocal, claims)
		return c.Next()
	}
}
