package controllers

import (
	"encoding/json"

	"iapt/database"
	"iapt/middleware"
	courseModels "iapt/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateModule adds a module to a course
func AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := c.Locals("validatedModule").(*struct {
		Title           string `json:"title"`
		Content         string `json:"content"`
		SortOrder       int    `json:"sort_order"`
		DurationMinutes int    `json:"duration_minutes"`
		VideoURL        string `json:"video_url"`
		PdfURL          string `json:"pdf_url"`
		ImageURL        string `json:"image_url"`
	})

	module := courseModels.Module{
		CourseID:        uint(courseID),
		Title:           reqData.Title,
		Content:         reqData.Content,
		SortOrder:       reqData.SortOrder,
		DurationMinutes: reqData.DurationMinutes,
		VideoURL:        reqData.VideoURL,
		PdfURL:          reqData.PdfURL,
		ImageURL:        reqData.ImageURL,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule edits module fields
func AdminUpdateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData := c.Locals("validatedModuleUpdate").(*struct {
		Title           *string `json:"title"`
		Content         *string `json:"content"`
		SortOrder       *int    `json:"sort_order"`
		DurationMinutes *int    `json:"duration_minutes"`
		VideoURL        *string `json:"video_url"`
		PdfURL          *string `json:"pdf_url"`
		ImageURL        *string `json:"image_url"`
	})

	patch := map[string]interface{}{}
	if reqData.Title != nil {
		patch["title"] = *reqData.Title
	}
	if reqData.Content != nil {
		patch["content"] = *reqData.Content
	}
	if reqData.SortOrder != nil {
		patch["sort_order"] = *reqData.SortOrder
	}
	if reqData.DurationMinutes != nil {
		patch["duration_minutes"] = *reqData.DurationMinutes
	}
	if reqData.VideoURL != nil {
		patch["video_url"] = *reqData.VideoURL
	}
	if reqData.PdfURL != nil {
		patch["pdf_url"] = *reqData.PdfURL
	}
	if reqData.ImageURL != nil {
		patch["image_url"] = *reqData.ImageURL
	}

	if len(patch) > 0 {
		if err := database.Database.Db.Model(&module).Updates(patch).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft-deletes a module and its quiz
func AdminDeleteModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	db := database.Database.Db
	tx := db.Begin()

	if err := tx.Model(&module).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if err := tx.Model(&courseModels.Quiz{}).Where("module_id = ?", moduleID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module quiz!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists the modules of a course in order
func AdminListModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var modules []courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = false", courseID).Order("sort_order asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// AdminCreateQuiz attaches a quiz to a module (one quiz per module)
func AdminCreateQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var existing courseModels.Quiz
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = false", moduleID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module already has a quiz!", nil)
	}

	reqData := c.Locals("validatedQuiz").(*struct {
		Title        string `json:"title"`
		PassingScore int    `json:"passing_score"`
	})

	passingScore := reqData.PassingScore
	if passingScore == 0 {
		passingScore = courseModels.DefaultPassingScore
	}

	quiz := courseModels.Quiz{
		ModuleID:     uint(moduleID),
		Title:        reqData.Title,
		PassingScore: passingScore,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminAddQuestion adds a question to a quiz. For choice questions the
// correct answer must be one of the options.
func AdminAddQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData := c.Locals("validatedQuestion").(*struct {
		Question      string   `json:"question"`
		QuestionType  string   `json:"question_type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		SortOrder     int      `json:"sort_order"`
	})

	optionsJSON, _ := json.Marshal(reqData.Options)

	question := courseModels.QuizQuestion{
		QuizID:        uint(quizID),
		Question:      reqData.Question,
		QuestionType:  courseModels.QuestionType(reqData.QuestionType),
		Options:       optionsJSON,
		CorrectAnswer: reqData.CorrectAnswer,
		SortOrder:     reqData.SortOrder,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminDeleteQuestion soft-deletes a quiz question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if err := database.Database.Db.Model(&question).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
