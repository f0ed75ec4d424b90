package controllers

import (
	"encoding/json"
	"log"
	"time"

	"iapt/database"
	"iapt/middleware"
	"iapt/models"
	courseModels "iapt/models/course"
	"iapt/utils"

	"github.com/gofiber/fiber/v2"
)

// GetModuleQuiz returns the quiz of a module with its questions, without the
// correct answers.
func GetModuleQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = false", moduleID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "This module has no quiz!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = false", quiz.ID).Order("sort_order asc").Find(&questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": questions,
	})
}

// SubmitQuiz scores a quiz submission, records the attempt and advances the
// enrollment when the quiz is passed. Every submission creates a new attempt
// row, prior attempts are never touched.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)
	answers := c.Locals("validatedQuizAnswers").(map[uint]string)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var quiz courseModels.Quiz
	if err := db.Where("module_id = ? AND is_deleted = false", moduleID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "This module has no quiz!", nil)
	}

	var questions []courseModels.QuizQuestion
	if err := db.Where("quiz_id = ? AND is_deleted = false", quiz.ID).Order("sort_order asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz questions!", nil)
	}

	// Ordered module list of the course; the module position drives progress
	var modules []courseModels.Module
	if err := db.Where("course_id = ? AND is_deleted = false", courseID).Order("sort_order asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course modules!", nil)
	}

	moduleIndex := -1
	for i, m := range modules {
		if m.ID == module.ID {
			moduleIndex = i
			break
		}
	}
	if moduleIndex < 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// Sequence is enforced here, not in the UI
	ok, err := checkPrerequisites(db, userID, modules, moduleIndex)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check module prerequisites!", nil)
	}
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Terminez d'abord les quiz des modules précédents!", nil)
	}

	result, err := ScoreQuizAttempt(questions, answers, quiz.PassingScore)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "This quiz has no questions and cannot be submitted!", nil)
	}

	answersJSON, _ := json.Marshal(answers)
	attempt := courseModels.QuizAttempt{
		QuizID:      quiz.ID,
		UserID:      userID,
		Answers:     answersJSON,
		Score:       result.Score,
		Passed:      result.Passed,
		AttemptedAt: time.Now(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record quiz attempt!", nil)
	}

	// A failed quiz records the attempt and leaves the enrollment untouched
	if !result.Passed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
			"attempt_id": attempt.ID,
			"result":     result,
			"enrollment": enrollment,
		})
	}

	completedNow, err := AdvanceEnrollment(db, &enrollment, moduleIndex, len(modules))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course progress!", nil)
	}

	var certificate *courseModels.Certificate
	if completedNow {
		var course courseModels.Course
		db.Where("id = ?", courseID).First(&course)

		certificate, err = issueCertificate(db, userID, uint(courseID))
		if err != nil {
			log.Printf("Failed to issue certificate for user %d course %d: %v", userID, courseID, err)
		} else {
			go utils.SendCertificateEmail(user.Email, user.FullName, course.Title, certificate.CertificateNumber)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt_id":  attempt.ID,
		"result":      result,
		"enrollment":  enrollment,
		"certificate": certificate,
	})
}

// GetQuizAttempts lists the user's attempts for a module quiz, most recent first
func GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = false", moduleID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "This module has no quiz!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Where("quiz_id = ? AND user_id = ?", quiz.ID, userID).Order("attempted_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
	})
}
