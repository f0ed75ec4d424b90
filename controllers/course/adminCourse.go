package controllers

import (
	"iapt/database"
	"iapt/middleware"
	"iapt/models"
	courseModels "iapt/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a draft course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		Level           string `json:"level"`
		Sector          string `json:"sector"`
		Format          string `json:"format"`
		DurationMinutes int    `json:"duration_minutes"`
		ThumbnailURL    string `json:"thumbnail_url"`
		SortOrder       int    `json:"sort_order"`
	})

	course := courseModels.Course{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Level:           courseModels.CourseLevel(reqData.Level),
		Sector:          reqData.Sector,
		Format:          courseModels.CourseFormat(reqData.Format),
		DurationMinutes: reqData.DurationMinutes,
		ThumbnailURL:    reqData.ThumbnailURL,
		SortOrder:       reqData.SortOrder,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse edits course fields
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := c.Locals("validatedCourseUpdate").(*struct {
		Title           *string `json:"title"`
		Description     *string `json:"description"`
		Level           *string `json:"level"`
		Sector          *string `json:"sector"`
		Format          *string `json:"format"`
		DurationMinutes *int    `json:"duration_minutes"`
		ThumbnailURL    *string `json:"thumbnail_url"`
		SortOrder       *int    `json:"sort_order"`
	})

	patch := map[string]interface{}{}
	if reqData.Title != nil {
		patch["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		patch["description"] = *reqData.Description
	}
	if reqData.Level != nil {
		patch["level"] = *reqData.Level
	}
	if reqData.Sector != nil {
		patch["sector"] = *reqData.Sector
	}
	if reqData.Format != nil {
		patch["format"] = *reqData.Format
	}
	if reqData.DurationMinutes != nil {
		patch["duration_minutes"] = *reqData.DurationMinutes
	}
	if reqData.ThumbnailURL != nil {
		patch["thumbnail_url"] = *reqData.ThumbnailURL
	}
	if reqData.SortOrder != nil {
		patch["sort_order"] = *reqData.SortOrder
	}

	if len(patch) > 0 {
		if err := database.Database.Db.Model(&course).Updates(patch).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminPublishCourse toggles the published flag
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := new(struct {
		IsPublished bool `json:"is_published"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_published", reqData.IsPublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course publication updated!", course)
}

// AdminDeleteCourse soft-deletes a course. Enrollments keep referencing it for
// history, so rows are flagged, never removed.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Updates(map[string]interface{}{
		"is_deleted":   true,
		"is_published": false,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists all courses including drafts
func AdminGetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&courseModels.Course{}).Where("is_deleted = false")

	var total int64
	query.Count(&total)

	var courses []courseModels.Course
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
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

// AdminGetCourseEnrollments lists enrollments for a course
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = false", courseID).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// AdminDashboardStats returns back-office counters
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalEnrollments, completedEnrollments int64
	var totalPayments, completedPayments int64
	var revenue int64

	db.Model(&models.User{}).Where("is_deleted = false").Count(&totalUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = false").Count(&totalCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = false").Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("completed = true AND is_deleted = false").Count(&completedEnrollments)
	db.Model(&models.Payment{}).Where("is_deleted = false").Count(&totalPayments)
	db.Model(&models.Payment{}).Where("status = ? AND is_deleted = false", models.PaymentStatusCompleted).Count(&completedPayments)
	db.Model(&models.Payment{}).Where("status = ? AND is_deleted = false", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"users": totalUsers,
		"courses": totalCourses,
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"payments": fiber.Map{
			"total":       totalPayments,
			"completed":   completedPayments,
			"revenue_xof": revenue,
		},
	})
}
