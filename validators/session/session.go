package sessionValidator

import (
	"strconv"
	"strings"
	"time"

	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			MeetingURL  string    `json:"meeting_url"`
			ScheduledAt time.Time `json:"scheduled_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ScheduledAt.IsZero() {
			errors["scheduled_at"] = "Scheduled time is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

func UpdateSessionStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Session ID!", nil)
		}
		c.Locals("sessionID", id)

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		valid := false
		for _, s := range []models.SessionStatus{models.SessionScheduled, models.SessionLive, models.SessionEnded, models.SessionCancelled} {
			if reqData.Status == string(s) {
				valid = true
				break
			}
		}
		if !valid {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Unknown session status!"})
		}

		c.Locals("validatedSessionStatus", reqData)
		return c.Next()
	}
}
