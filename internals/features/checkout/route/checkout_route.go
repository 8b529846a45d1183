package route

import (
	"github.com/gofiber/fiber/v2"

	checkoutController "summerschool_backend/internals/features/checkout/controller"
	"summerschool_backend/internals/middlewares"
)

func CheckoutRoutes(app fiber.Router, svc checkoutController.Service) {
	ctrl := checkoutController.NewCheckoutController(svc)
	limit := middlewares.CheckoutRateLimiter()

	app.Post("/checkout", limit, ctrl.Checkout)
	app.Post("/checkout/intent", limit, ctrl.CreateIntent)
	app.Delete("/pay/:id/:classID/:myEmail", limit, ctrl.LegacyPay)
}
