package categoryRoutes

import (
	categoryController "tchadskills/controllers/category"
	"tchadskills/middleware"
	"tchadskills/models"
	categoryValidator "tchadskills/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up the category catalog routes. Reads are public,
// writes are admin only.
func SetupCategoryRoutes(app *fiber.App) {
	group := app.Group("/api/categories")

	group.Get("/", categoryController.GetCategories)
	group.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		categoryValidator.CreateCategory(), categoryController.CreateCategory)
	group.Get("/:slug", categoryValidator.CategorySlug(), categoryController.GetCategoryBySlug)
}
