package courseValidator

import (
	"strings"
	"tchadskills/middleware"
	"tchadskills/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title              string   `json:"title" validate:"required,min=3"`
	Description        string   `json:"description" validate:"required,min=5"`
	LongDescription    string   `json:"long_description"`
	CategoryID         *uint    `json:"category_id"`
	ThumbnailURL       string   `json:"thumbnail_url"`
	PreviewVideoURL    string   `json:"preview_video_url"`
	Level              string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Language           string   `json:"language"`
	Price              float64  `json:"price" validate:"min=0"`
	DiscountPrice      *float64 `json:"discount_price"`
	Currency           string   `json:"currency"`
	DurationHours      float64  `json:"duration_hours" validate:"min=0"`
	Prerequisites      string   `json:"prerequisites"`
	LearningObjectives string   `json:"learning_objectives"`
	IsPublished        bool     `json:"is_published"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseSlug validates the :slug path parameter.
func CourseSlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		c.Locals("courseSlug", slug)
		return c.Next()
	}
}
