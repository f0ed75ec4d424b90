package sessionRoutes

import (
	sessionControllers "iapt/controllers/session"
	"iapt/middleware"
	sessionValidators "iapt/validators/session"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App) {
	sessionGroup := app.Group("/sessions")

	sessionGroup.Get("/upcoming", sessionControllers.GetUpcomingSessions)

	adminGroup := app.Group("/admin/session", middleware.JWTMiddleware, middleware.AdminMiddleware)
	adminGroup.Post("/create", sessionValidators.CreateSession(), sessionControllers.AdminCreateSession)
	adminGroup.Patch("/:id/status", sessionValidators.UpdateSessionStatus(), sessionControllers.AdminUpdateSessionStatus)
}
