package blogValidator

import (
	"strconv"
	"strings"

	"iapt/middleware"

	"github.com/gofiber/fiber/v2"
)

func GeneratePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Content is required!"})
		}

		c.Locals("validatedBlogGenerate", reqData)
		return c.Next()
	}
}

func PostID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
		}

		c.Locals("postID", id)
		return c.Next()
	}
}
