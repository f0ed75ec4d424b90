package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"iapt/database"
	"iapt/middleware"
	courseModels "iapt/models/course"
	"iapt/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminGenerateCourse asks the AI gateway for a full course and persists it as
// an unpublished draft: course, modules, quizzes and questions in one
// transaction. Upstream 429/402 are passed through verbatim.
func AdminGenerateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourseGenerate").(*struct {
		Prompt string `json:"prompt"`
		Sector string `json:"sector"`
		Level  string `json:"level"`
	})

	generated, err := utils.GenerateCourse(reqData.Prompt, reqData.Sector, reqData.Level)
	if err != nil {
		var aiErr *utils.AIError
		if errors.As(err, &aiErr) {
			return middleware.JsonResponse(c, aiErr.StatusCode, false, aiErr.Message, nil)
		}
		log.Printf("Course generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate course!", nil)
	}

	level := generated.Level
	if !courseModels.IsValidLevel(level) {
		level = string(courseModels.LevelDebutant)
	}

	course := courseModels.Course{
		Title:       generated.Title,
		Description: generated.Description,
		Level:       courseModels.CourseLevel(level),
		Sector:      generated.Sector,
		Format:      courseModels.FormatTexte,
	}

	db := database.Database.Db
	tx := db.Begin()

	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save generated course!", nil)
	}

	for i, genModule := range generated.Modules {
		module := courseModels.Module{
			CourseID:  course.ID,
			Title:     genModule.Title,
			Content:   genModule.Content,
			SortOrder: i,
		}
		if err := tx.Create(&module).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save generated modules!", nil)
		}

		if len(genModule.Questions) == 0 {
			continue
		}

		quiz := courseModels.Quiz{
			ModuleID:     module.ID,
			Title:        "Quiz: " + genModule.Title,
			PassingScore: courseModels.DefaultPassingScore,
		}
		if err := tx.Create(&quiz).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save generated quiz!", nil)
		}

		for j, genQuestion := range genModule.Questions {
			questionType := genQuestion.QuestionType
			if !courseModels.IsValidQuestionType(questionType) {
				questionType = string(courseModels.QuestionQCM)
			}

			optionsJSON, _ := json.Marshal(genQuestion.Options)
			question := courseModels.QuizQuestion{
				QuizID:        quiz.ID,
				Question:      genQuestion.Question,
				QuestionType:  courseModels.QuestionType(questionType),
				Options:       optionsJSON,
				CorrectAnswer: genQuestion.CorrectAnswer,
				SortOrder:     j,
			}
			if err := tx.Create(&question).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save generated questions!", nil)
			}
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course generated successfully!", fiber.Map{
		"course":  course,
		"modules": len(generated.Modules),
	})
}
