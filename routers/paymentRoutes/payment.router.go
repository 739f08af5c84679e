package paymentRoutes

import (
	paymentController "tchadskills/controllers/payment"
	"tchadskills/middleware"
	paymentValidator "tchadskills/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the payment routes. The callback is unauthenticated:
// the provider calls it, not a user.
func SetupPaymentRoutes(app *fiber.App) {
	group := app.Group("/api/payments")

	group.Get("/", middleware.JWTMiddleware, paymentController.GetPayments)
	group.Post("/", middleware.JWTMiddleware, paymentValidator.CreatePayment(), paymentController.CreatePayment)
	group.Post("/callback", paymentValidator.Callback(), paymentController.PaymentCallback)
}
