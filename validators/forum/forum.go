package forumValidator

import (
	"strconv"
	"strings"

	"iapt/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

func TopicID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}

		c.Locals("topicID", id)
		return c.Next()
	}
}

func CreateReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}
		c.Locals("topicID", id)

		reqData := new(struct {
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Content is required!"})
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
