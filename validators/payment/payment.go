package paymentValidator

import (
	"tchadskills/middleware"
	"tchadskills/validators"

	"github.com/gofiber/fiber/v2"
)

type CreatePaymentRequest struct {
	CourseID      uint    `json:"course_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=moov_money airtel_money tigo_cash"`
	PhoneNumber   string  `json:"phone_number" validate:"required,min=8"`
}

type CallbackRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Status        string `json:"status" validate:"required"`
	Reference     string `json:"reference"`
	Message       string `json:"message"`
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		if reqData.Currency == "" {
			reqData.Currency = "XAF"
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

func Callback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CallbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCallback", reqData)
		return c.Next()
	}
}
