package courseValidator

import (
	"strings"

	"iapt/middleware"
	"iapt/models"
	courseModels "iapt/models/course"

	"github.com/gofiber/fiber/v2"
)

func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			Level           string `json:"level"`
			Sector          string `json:"sector"`
			Format          string `json:"format"`
			DurationMinutes int    `json:"duration_minutes"`
			ThumbnailURL    string `json:"thumbnail_url"`
			SortOrder       int    `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Level == "" {
			reqData.Level = string(courseModels.LevelDebutant)
		} else if !courseModels.IsValidLevel(reqData.Level) {
			errors["level"] = "Unknown course level!"
		}
		if reqData.Format == "" {
			reqData.Format = string(courseModels.FormatTexte)
		} else if !courseModels.IsValidFormat(reqData.Format) {
			errors["format"] = "Unknown course format!"
		}
		if reqData.Sector != "" && !models.IsValidSector(reqData.Sector) {
			errors["sector"] = "Unknown sector!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "id", "courseID", "Course ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title           *string `json:"title"`
			Description     *string `json:"description"`
			Level           *string `json:"level"`
			Sector          *string `json:"sector"`
			Format          *string `json:"format"`
			DurationMinutes *int    `json:"duration_minutes"`
			ThumbnailURL    *string `json:"thumbnail_url"`
			SortOrder       *int    `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Level != nil && !courseModels.IsValidLevel(*reqData.Level) {
			errors["level"] = "Unknown course level!"
		}
		if reqData.Format != nil && !courseModels.IsValidFormat(*reqData.Format) {
			errors["format"] = "Unknown course format!"
		}
		if reqData.Sector != nil && !models.IsValidSector(*reqData.Sector) {
			errors["sector"] = "Unknown sector!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "id", "courseID", "Course ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title           string `json:"title"`
			Content         string `json:"content"`
			SortOrder       int    `json:"sort_order"`
			DurationMinutes int    `json:"duration_minutes"`
			VideoURL        string `json:"video_url"`
			PdfURL          string `json:"pdf_url"`
			ImageURL        string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		if ok, err := paramID(c, "module_id", "moduleID", "Module ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title           *string `json:"title"`
			Content         *string `json:"content"`
			SortOrder       *int    `json:"sort_order"`
			DurationMinutes *int    `json:"duration_minutes"`
			VideoURL        *string `json:"video_url"`
			PdfURL          *string `json:"pdf_url"`
			ImageURL        *string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title cannot be empty!"})
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "module_id", "moduleID", "Module ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title        string `json:"title"`
			PassingScore int    `json:"passing_score"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "quiz_id", "quizID", "Quiz ID"); !ok {
			return err
		}

		reqData := new(struct {
			Question      string   `json:"question"`
			QuestionType  string   `json:"question_type"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
			SortOrder     int      `json:"sort_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question text is required!"
		}
		if reqData.QuestionType == "" {
			reqData.QuestionType = string(courseModels.QuestionQCM)
		} else if !courseModels.IsValidQuestionType(reqData.QuestionType) {
			errors["question_type"] = "Unknown question type!"
		}
		if reqData.CorrectAnswer == "" {
			errors["correct_answer"] = "Correct answer is required!"
		}

		// For choice questions the correct answer must match one of the options
		if reqData.QuestionType != string(courseModels.QuestionTexteLibre) {
			if len(reqData.Options) < 2 {
				errors["options"] = "Choice questions need at least 2 options!"
			} else if reqData.CorrectAnswer != "" {
				found := false
				for _, opt := range reqData.Options {
					if opt == reqData.CorrectAnswer {
						found = true
						break
					}
				}
				if !found {
					errors["correct_answer"] = "Correct answer must be one of the options!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "question_id", "questionID", "Question ID"); !ok {
			return err
		}
		return c.Next()
	}
}

func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := paramID(c, "module_id", "moduleID", "Module ID"); !ok {
			return err
		}
		return c.Next()
	}
}

func GenerateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Prompt string `json:"prompt"`
			Sector string `json:"sector"`
			Level  string `json:"level"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Prompt) == "" {
			errors["prompt"] = "Prompt is required!"
		}
		if reqData.Sector != "" && !models.IsValidSector(reqData.Sector) {
			errors["sector"] = "Unknown sector!"
		}
		if reqData.Level != "" && !courseModels.IsValidLevel(reqData.Level) {
			errors["level"] = "Unknown course level!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseGenerate", reqData)
		return c.Next()
	}
}
