package enrollmentRoutes

import (
	courseController "tchadskills/controllers/course"
	"tchadskills/middleware"
	enrollmentValidator "tchadskills/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up the caller-scoped enrollment routes
func SetupEnrollmentRoutes(app *fiber.App) {
	group := app.Group("/api/enrollments", middleware.JWTMiddleware)

	group.Get("/", courseController.GetEnrollments)
	group.Post("/:id/update_progress",
		enrollmentValidator.EnrollmentID(),
		enrollmentValidator.UpdateProgress(),
		courseController.UpdateProgress)
}
