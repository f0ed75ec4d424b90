package sessionController

import (
	"time"

	"iapt/database"
	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

// GetUpcomingSessions lists scheduled and live sessions
func GetUpcomingSessions(c *fiber.Ctx) error {
	var sessions []models.LiveSession
	err := database.Database.Db.
		Where("status IN ? AND is_deleted = false", []models.SessionStatus{models.SessionScheduled, models.SessionLive}).
		Order("scheduled_at asc").
		Find(&sessions).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", fiber.Map{
		"sessions": sessions,
	})
}

// AdminCreateSession schedules a live session
func AdminCreateSession(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSession").(*struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		MeetingURL  string    `json:"meeting_url"`
		ScheduledAt time.Time `json:"scheduled_at"`
	})

	session := models.LiveSession{
		Title:       reqData.Title,
		Description: reqData.Description,
		MeetingURL:  reqData.MeetingURL,
		ScheduledAt: reqData.ScheduledAt,
		Status:      models.SessionScheduled,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session created successfully!", session)
}

// AdminUpdateSessionStatus moves a session through its lifecycle
func AdminUpdateSessionStatus(c *fiber.Ctx) error {
	sessionID := c.Locals("sessionID").(int)

	var session models.LiveSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", sessionID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	reqData := c.Locals("validatedSessionStatus").(*struct {
		Status string `json:"status"`
	})

	if err := database.Database.Db.Model(&session).Update("status", reqData.Status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", session)
}
