package courseRoutes

import (
	courseController "tchadskills/controllers/course"
	"tchadskills/middleware"
	"tchadskills/models"
	courseValidator "tchadskills/validators/course"
	reviewValidator "tchadskills/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course catalog, enrollment and review routes.
// Published catalog reads are public; everything else needs a token.
func SetupCourseRoutes(app *fiber.App) {
	group := app.Group("/api/courses")

	group.Get("/", courseController.GetAllCourses)
	group.Post("/", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		courseValidator.CreateCourse(), courseController.CreateCourse)

	group.Get("/:slug", courseValidator.CourseSlug(), courseController.GetCourseBySlug)
	group.Get("/:slug/reviews", courseValidator.CourseSlug(), courseController.GetCourseReviews)

	group.Post("/:slug/enroll", middleware.JWTMiddleware,
		courseValidator.CourseSlug(), courseController.EnrollInCourse)
	group.Post("/:slug/review", middleware.JWTMiddleware,
		courseValidator.CourseSlug(), reviewValidator.SubmitReview(), courseController.SubmitReview)
}
