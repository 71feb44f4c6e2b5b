package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/pkg/jwt"
)

// Locals key for the session email in Fiber.
const LocalSessionEmail = "session_email"

// AuthMiddleware validates the Bearer JWT and stores the session email
// in c.Locals. Every data route sits behind it.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalSessionEmail, email)
		return c.Next()
	}
}

// GetSessionEmail returns the authenticated email from the context
// (after the auth middleware).
func GetSessionEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
