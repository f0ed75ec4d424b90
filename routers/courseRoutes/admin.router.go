package courseRoutes

import (
	controllers "iapt/controllers/course"
	"iapt/middleware"
	validators "iapt/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminMiddleware)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", controllers.AdminGetAllCourses)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Get("/:id/enrollments", validators.CourseID(), controllers.AdminGetCourseEnrollments)

	// Module management
	adminGroup.Post("/:id/module", validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Get("/:id/modules", validators.CourseID(), controllers.AdminListModules)
	adminGroup.Put("/:course_id/module/:module_id", validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", validators.CourseAndModule(), controllers.AdminDeleteModule)

	// Quiz management
	quizGroup := app.Group("/admin/module", middleware.JWTMiddleware, middleware.AdminMiddleware)
	quizGroup.Post("/:module_id/quiz", validators.CreateQuiz(), controllers.AdminCreateQuiz)

	questionGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.AdminMiddleware)
	questionGroup.Post("/:quiz_id/question", validators.AddQuestion(), controllers.AdminAddQuestion)
	questionGroup.Delete("/question/:question_id", validators.QuestionID(), controllers.AdminDeleteQuestion)

	// AI generation and dashboard
	generatorGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)
	generatorGroup.Post("/generate/course", validators.GenerateCourse(), controllers.AdminGenerateCourse)
	generatorGroup.Get("/dashboard", controllers.AdminDashboardStats)
}
