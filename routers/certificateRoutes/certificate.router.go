package certificateRoutes

import (
	courseController "tchadskills/controllers/course"
	"tchadskills/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up the certificate routes. Verification is
// public so anyone holding a certificate number can check it.
func SetupCertificateRoutes(app *fiber.App) {
	group := app.Group("/api/certificates")

	group.Get("/", middleware.JWTMiddleware, courseController.GetUserCertificates)
	group.Get("/:id/verify", courseController.VerifyCertificate)
}
