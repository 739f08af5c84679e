package categoryValidator

import (
	"strings"
	"tchadskills/middleware"
	"tchadskills/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	ParentID     *uint  `json:"parent_id"`
	DisplayOrder int    `json:"display_order"`
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func CategorySlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category slug is required!", nil)
		}

		c.Locals("categorySlug", slug)
		return c.Next()
	}
}
