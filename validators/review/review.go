package reviewValidator

import (
	"tchadskills/middleware"
	"tchadskills/validators"

	"github.com/gofiber/fiber/v2"
)

type SubmitReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
}

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
