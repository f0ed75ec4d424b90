package blogRoutes

import (
	blogControllers "iapt/controllers/blog"
	"iapt/middleware"
	blogValidators "iapt/validators/blog"

	"github.com/gofiber/fiber/v2"
)

func SetupBlogRoutes(app *fiber.App) {
	blogGroup := app.Group("/blog")

	blogGroup.Get("/posts", blogControllers.GetPublishedPosts)
	blogGroup.Get("/post/:slug", blogControllers.GetPostBySlug)

	adminGroup := app.Group("/admin/blog", middleware.JWTMiddleware, middleware.AdminMiddleware)
	adminGroup.Post("/generate", blogValidators.GeneratePost(), blogControllers.AdminGeneratePost)
	adminGroup.Post("/:id/publish", blogValidators.PostID(), blogControllers.AdminPublishPost)
}
