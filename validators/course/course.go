package courseValidator

import (
	"strconv"
	"strings"

	"iapt/middleware"

	"github.com/gofiber/fiber/v2"
)

// paramID validates a positive integer route parameter and stores it in Locals
func paramID(c *fiber.Ctx, param, local, label string) (bool, error) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}

	c.Locals(local, id)
	return true, nil
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "id", "courseID", "Course ID"); !ok {
			return err
		}
		return c.Next()
	}
}

// CourseAndModule validates :course_id and :module_id route parameters
func CourseAndModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		if ok, err := paramID(c, "module_id", "moduleID", "Module ID"); !ok {
			return err
		}
		return c.Next()
	}
}

// SubmitQuiz validates a quiz submission body. The answers map is keyed by
// question id; the engine tolerates missing entries but an empty submission is
// rejected outright.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		if ok, err := paramID(c, "module_id", "moduleID", "Module ID"); !ok {
			return err
		}

		reqData := new(struct {
			Answers map[uint]string `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Please answer the quiz before submitting!",
			})
		}

		c.Locals("validatedQuizAnswers", reqData.Answers)
		return c.Next()
	}
}
