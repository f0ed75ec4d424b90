package controllers

import (
	"time"

	"iapt/database"
	"iapt/middleware"
	"iapt/models"
	courseModels "iapt/models/course"
	"iapt/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse creates the enrollment tying the user to a course. One
// enrollment per (user, course).
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_published = true AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   uint(courseID),
		EnrolledAt: time.Now(),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go utils.SendEnrollmentEmail(user.Email, user.FullName, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetUserEnrollmentsList lists the user's enrollments with progress
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND is_deleted = false", userID)

	var total int64
	query.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := query.Order("enrolled_at desc").Offset(offset).Limit(limit).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetUserCertificates lists the user's issued certificates
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
	})
}
