package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/projectify/backend/internal/dto"
	"github.com/projectify/backend/internal/models"
)

// AdminRequired verifies the caller's role against the user row rather than
// trusting the token claim, so a stale token never outlives the database.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Unauthorized",
			})
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
