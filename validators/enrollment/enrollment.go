package enrollmentValidator

import (
	"strconv"
	"strings"
	"tchadskills/middleware"
	"tchadskills/validators"

	"github.com/gofiber/fiber/v2"
)

type UpdateProgressRequest struct {
	// Out-of-range progress is rejected, not clamped.
	Progress *float64 `json:"progress" validate:"required,min=0,max=100"`
}

func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", uint(id))
		return c.Next()
	}
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
