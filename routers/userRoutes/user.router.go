package userRoutes

import (
	userControllers "iapt/controllers/userControllers"
	"iapt/middleware"
	userValidators "iapt/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)
}
