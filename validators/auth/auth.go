package authValidator

import (
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		// Admin accounts are never self-assignable
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Token() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TokenRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}

func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RefreshRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedRefresh", reqData)
		return c.Next()
	}
}
