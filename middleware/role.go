package middleware

import (
	"tchadskills/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that only lets the listed roles through.
// The role set is closed; anything outside it is rejected outright.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		switch role {
		case models.RoleStudent, models.RoleInstructor, models.RoleAdmin:
			for _, a := range allowed {
				if role == a {
					return c.Next()
				}
			}
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		default:
			return JsonResponse(c, fiber.StatusForbidden, false, "Unknown role!", nil)
		}
	}
}
