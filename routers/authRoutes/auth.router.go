package authRoutes

import (
	authController "tchadskills/controllers/auth"
	authValidator "tchadskills/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and token exchange routes
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/auth/register", authValidator.Register(), authController.Register)
	api.Post("/token", authValidator.Token(), authController.Token)
	api.Post("/token/refresh", authValidator.Refresh(), authController.RefreshToken)
}
