package controllers

import (
	"iapt/database"
	"iapt/middleware"
	"iapt/models"
	courseModels "iapt/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with optional level/sector filters
func GetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	level := c.Query("level")
	sector := c.Query("sector")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&courseModels.Course{}).Where("is_published = true AND is_deleted = false")

	if level != "" {
		query = query.Where("level = ?", level)
	}
	if sector != "" {
		query = query.Where("sector = ?", sector)
	}

	var total int64
	query.Count(&total)

	var courses []courseModels.Course
	if err := query.Order("sort_order asc, created_at desc").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns one published course with its ordered module plan.
// Module content itself is served per module, behind the entitlement gate.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_published = true AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type modulePlan struct {
		ID              uint   `json:"id"`
		Title           string `json:"title"`
		SortOrder       int    `json:"sort_order"`
		DurationMinutes int    `json:"duration_minutes"`
		HasQuiz         bool   `json:"has_quiz"`
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = false", courseID).Order("sort_order asc").Find(&modules)

	plan := make([]modulePlan, len(modules))
	for i, m := range modules {
		var quizCount int64
		database.Database.Db.Model(&courseModels.Quiz{}).Where("module_id = ? AND is_deleted = false", m.ID).Count(&quizCount)
		plan[i] = modulePlan{
			ID:              m.ID,
			Title:           m.Title,
			SortOrder:       m.SortOrder,
			DurationMinutes: m.DurationMinutes,
			HasQuiz:         quizCount > 0,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"modules": plan,
	})
}

// GetModuleContent serves the full module content to an enrolled user with an
// active plan
func GetModuleContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Entitlement gate: content requires an active plan
	if !user.PlanActive {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Un abonnement actif est requis pour accéder au contenu!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module":     module,
		"enrollment": enrollment,
	})
}
