package userController

import (
	"iapt/database"
	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates the user's editable profile fields. Plan fields are a
// projection of completed payments and cannot be edited here.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := c.Locals("validatedProfileUpdate").(*struct {
		FullName  *string `json:"full_name"`
		Phone     *string `json:"phone"`
		Sector    *string `json:"sector"`
		AvatarURL *string `json:"avatar_url"`
	})

	patch := map[string]interface{}{}
	if reqData.FullName != nil {
		patch["full_name"] = *reqData.FullName
	}
	if reqData.Phone != nil {
		patch["phone"] = *reqData.Phone
	}
	if reqData.Sector != nil {
		patch["sector"] = *reqData.Sector
	}
	if reqData.AvatarURL != nil {
		patch["avatar_url"] = *reqData.AvatarURL
	}

	if len(patch) > 0 {
		if err := database.Database.Db.Model(&user).Updates(patch).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
