package userValidator

import (
	"strings"

	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName  *string `json:"full_name"`
			Phone     *string `json:"phone"`
			Sector    *string `json:"sector"`
			AvatarURL *string `json:"avatar_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FullName != nil && strings.TrimSpace(*reqData.FullName) == "" {
			errors["full_name"] = "Full name cannot be empty!"
		}
		if reqData.Sector != nil && *reqData.Sector != "" && !models.IsValidSector(*reqData.Sector) {
			errors["sector"] = "Unknown sector!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
