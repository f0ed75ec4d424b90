package forumRoutes

import (
	forumControllers "iapt/controllers/forum"
	"iapt/middleware"
	forumValidators "iapt/validators/forum"

	"github.com/gofiber/fiber/v2"
)

func SetupForumRoutes(app *fiber.App) {
	forumGroup := app.Group("/forum")

	forumGroup.Get("/topics", forumControllers.GetTopics)
	forumGroup.Get("/topic/:id", forumValidators.TopicID(), forumControllers.GetTopicWithReplies)
	forumGroup.Post("/topic", middleware.JWTMiddleware, forumValidators.CreateTopic(), forumControllers.CreateTopic)
	forumGroup.Post("/topic/:id/reply", middleware.JWTMiddleware, forumValidators.CreateReply(), forumControllers.CreateReply)
}
