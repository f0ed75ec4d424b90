package courseRoutes

import (
	controllers "iapt/controllers/course"
	"iapt/middleware"
	validators "iapt/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the learner-facing catalogue and learning routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalogue is public, everything past enrollment needs a token
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Get("/:course_id/module/:module_id", middleware.JWTMiddleware, validators.CourseAndModule(), controllers.GetModuleContent)

	// Quiz flow
	courseGroup.Get("/:course_id/module/:module_id/quiz", middleware.JWTMiddleware, validators.CourseAndModule(), controllers.GetModuleQuiz)
	courseGroup.Post("/:course_id/module/:module_id/quiz/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
	courseGroup.Get("/:course_id/module/:module_id/quiz/attempts", middleware.JWTMiddleware, validators.CourseAndModule(), controllers.GetQuizAttempts)

	enrollmentGroup := app.Group("/enrollments")
	enrollmentGroup.Get("/", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)

	certificateGroup := app.Group("/certificates")
	certificateGroup.Get("/", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
