package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserID extracts the caller's UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Role extracts the caller's role claim; empty when absent.
func Role(c *fiber.Ctx) string {
	claims, err := tokenClaims(c)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}
