package middleware

import (
	"iapt/database"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware restricts a route to users with the admin role
func AdminMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = false",
		userID, models.RoleAdmin).First(&user).Error
	if err != nil {
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	return c.Next()
}
