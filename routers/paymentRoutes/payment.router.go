package paymentRoutes

import (
	paymentControllers "iapt/controllers/payment"
	"iapt/middleware"
	paymentValidators "iapt/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/checkout", middleware.JWTMiddleware, paymentValidators.CreateCheckout(), paymentControllers.CreateCheckout)
	paymentGroup.Get("/:id/verify", middleware.JWTMiddleware, paymentValidators.PaymentID(), paymentControllers.VerifyPayment)
	paymentGroup.Get("/history", middleware.JWTMiddleware, paymentControllers.GetPaymentHistory)

	// Wave calls this without a user token
	app.Post("/webhooks/wave", paymentControllers.WaveWebhook)
}
